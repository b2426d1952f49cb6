package dashboard

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	dashboardviews "github.com/dalemusser/enrolldash/internal/app/features/dashboard/views"
	"github.com/dalemusser/enrolldash/internal/domain/models"
	"github.com/dalemusser/enrolldash/internal/testutil"
)

func renderData(t *testing.T, data dashboardData) *goquery.Document {
	t.Helper()
	render := testutil.TemplateRenderer(t, dashboardviews.FS)
	rec := httptest.NewRecorder()
	render(rec, httptest.NewRequest("GET", "/dashboard", nil), "dashboard", data)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	if err != nil {
		t.Fatalf("parse HTML: %v", err)
	}
	return doc
}

func TestStudentCards_ColoredByBand(t *testing.T) {
	st, _ := NewViewState().Apply(Entered{Identity: testutil.StudentIdentity(), Present: true})
	st.Enrollments = []models.Enrollment{
		{CourseName: "Algebra", CompletionStatus: "Completed", Progress: testutil.IntPtr(100)},
		{CourseName: "History", CompletionStatus: "InProgress", Progress: testutil.IntPtr(45)},
		{CourseName: "Chemistry", CompletionStatus: "InProgress", Progress: testutil.IntPtr(75)},
		{CourseName: "Biology", CompletionStatus: "InProgress", Progress: testutil.IntPtr(95)},
		{CourseName: "Art", CompletionStatus: "Enrolled"},
	}
	data := newDashboardData(st)
	data.Title = dashboardTitle(st)

	doc := renderData(t, data)

	cards := doc.Find("#enrollment-cards .card")
	if cards.Length() != len(st.Enrollments) {
		t.Fatalf("cards: got %d, want %d", cards.Length(), len(st.Enrollments))
	}
	want := []struct {
		class, color, progress string
	}{
		{"band-complete", "#68D391", "Progress: 100%"},
		{"band-behind", "#FC8181", "Progress: 45%"},
		{"band-progressing", "#F6E05E", "Progress: 75%"},
		{"band-nearly-done", "#4FD1C5", "Progress: 95%"},
		{"band-nearly-done", "#4FD1C5", "Progress: %"},
	}
	cards.Each(func(i int, card *goquery.Selection) {
		if !card.HasClass(want[i].class) {
			t.Errorf("card %d: missing class %q", i, want[i].class)
		}
		if color, _ := card.Attr("data-color"); color != want[i].color {
			t.Errorf("card %d: color got %q, want %q", i, color, want[i].color)
		}
		if got := strings.TrimSpace(card.Find("h4").Text()); got != st.Enrollments[i].CourseName {
			t.Errorf("card %d: name got %q", i, got)
		}
		if got := strings.TrimSpace(card.Find("p").Text()); got != want[i].progress {
			t.Errorf("card %d: progress got %q, want %q", i, got, want[i].progress)
		}
	})
	if strings.Contains(doc.Find("#enrollment-cards").Text(), "No active classes found.") {
		t.Error("placeholder should not render when cards exist")
	}
}

func TestAdminStudentRows(t *testing.T) {
	st, _ := NewViewState().Apply(Entered{Identity: testutil.AdminIdentity(), Present: true})
	st.Students = []models.Student{
		{StudentID: 1, FullName: "Ann Lee", Email: "ann@example.com"},
		{StudentID: 2, FullName: "Bo Chan", Email: "bo@example.com"},
	}
	data := newDashboardData(st)
	data.Title = dashboardTitle(st)

	doc := renderData(t, data)

	rows := doc.Find("#students-table tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("student rows: got %d, want 2", rows.Length())
	}
	first := rows.First().Find("td")
	if strings.TrimSpace(first.Eq(1).Text()) != "Ann Lee" || strings.TrimSpace(first.Eq(2).Text()) != "ann@example.com" {
		t.Errorf("first student row: got %q", first.Text())
	}
}
