// internal/app/store/courses/coursestore.go
package courses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dalemusser/enrolldash/internal/domain/models"
)

// ShowAllCoursesPath is the course API endpoint that lists every course.
const ShowAllCoursesPath = "/api/Course/ShowAllCourses"

// ErrUnexpectedStatus is returned (wrapped) when the course API answers
// with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from course API")

// Store reads courses from the external course API. It owns no data;
// every call goes to the API.
type Store struct {
	baseURL string
	client  *http.Client
}

// New returns a Store for the course API at baseURL. A nil client uses
// http.DefaultClient.
func New(baseURL string, client *http.Client) *Store {
	if client == nil {
		client = http.DefaultClient
	}
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// BaseURL returns the API base the store talks to.
func (s *Store) BaseURL() string { return s.baseURL }

// ListAll returns the full course collection in API order.
func (s *Store) ListAll(ctx context.Context) ([]models.Course, error) {
	resp, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("list courses: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out []models.Course
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("list courses: decode: %w", err)
	}
	if out == nil {
		out = []models.Course{}
	}
	return out, nil
}

// Ping reports whether the course API answers the list endpoint with a
// 2xx status. The body is not decoded.
func (s *Store) Ping(ctx context.Context) error {
	resp, err := s.get(ctx)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ping course API: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (s *Store) get(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+ShowAllCoursesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build course request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("course API request: %w", err)
	}
	return resp, nil
}
