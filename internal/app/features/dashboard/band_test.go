package dashboard_test

import (
	"testing"

	"github.com/dalemusser/enrolldash/internal/app/features/dashboard"
	"github.com/dalemusser/enrolldash/internal/testutil"
)

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		progress int
		want     dashboard.Band
	}{
		{0, dashboard.BandBehind},
		{1, dashboard.BandBehind},
		{59, dashboard.BandBehind},
		{60, dashboard.BandProgressing},
		{75, dashboard.BandProgressing},
		{89, dashboard.BandProgressing},
		{90, dashboard.BandNearlyDone},
		{99, dashboard.BandNearlyDone},
		{100, dashboard.BandComplete},
	}
	for _, tt := range tests {
		if got := dashboard.BandFor(testutil.IntPtr(tt.progress)); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestBandFor_EveryPercentage(t *testing.T) {
	for p := 0; p <= 100; p++ {
		got := dashboard.BandFor(testutil.IntPtr(p))
		var want dashboard.Band
		switch {
		case p == 100:
			want = dashboard.BandComplete
		case p < 60:
			want = dashboard.BandBehind
		case p < 90:
			want = dashboard.BandProgressing
		default:
			want = dashboard.BandNearlyDone
		}
		if got != want {
			t.Fatalf("BandFor(%d) = %v, want %v", p, got, want)
		}
	}
}

func TestBandFor_OutOfRangeAndMissing(t *testing.T) {
	if got := dashboard.BandFor(nil); got != dashboard.BandNearlyDone {
		t.Errorf("BandFor(nil) = %v, want %v", got, dashboard.BandNearlyDone)
	}
	if got := dashboard.BandFor(testutil.IntPtr(-5)); got != dashboard.BandBehind {
		t.Errorf("BandFor(-5) = %v, want %v", got, dashboard.BandBehind)
	}
	if got := dashboard.BandFor(testutil.IntPtr(150)); got != dashboard.BandNearlyDone {
		t.Errorf("BandFor(150) = %v, want %v", got, dashboard.BandNearlyDone)
	}
}

func TestBand_ColorsAreDistinct(t *testing.T) {
	bands := []dashboard.Band{
		dashboard.BandComplete,
		dashboard.BandBehind,
		dashboard.BandProgressing,
		dashboard.BandNearlyDone,
	}
	seen := map[string]dashboard.Band{}
	for _, b := range bands {
		if prev, dup := seen[b.Color()]; dup {
			t.Errorf("bands %v and %v share color %s", prev, b, b.Color())
		}
		seen[b.Color()] = b
		if b.Class() == "" {
			t.Errorf("band %v has no class", b)
		}
	}
}
