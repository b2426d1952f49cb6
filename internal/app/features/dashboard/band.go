// internal/app/features/dashboard/band.go
package dashboard

// Band is the at-a-glance status of an enrollment's progress.
type Band int

const (
	BandComplete    Band = iota // exactly 100
	BandBehind                  // [0,60)
	BandProgressing             // [60,90)
	BandNearlyDone              // [90,100), and anything the checks above miss
)

// BandFor classifies progress. The checks run in a fixed order (==100,
// <60, <90) and everything else falls to BandNearlyDone, so a missing
// progress or a value above 100 lands there too.
func BandFor(progress *int) Band {
	if progress == nil {
		return BandNearlyDone
	}
	p := *progress
	switch {
	case p == 100:
		return BandComplete
	case p < 60:
		return BandBehind
	case p < 90:
		return BandProgressing
	default:
		return BandNearlyDone
	}
}

// Color returns the card color for b.
func (b Band) Color() string {
	switch b {
	case BandComplete:
		return "#68D391" // green
	case BandBehind:
		return "#FC8181" // red
	case BandProgressing:
		return "#F6E05E" // yellow
	default:
		return "#4FD1C5" // teal
	}
}

// Class returns the CSS class for b.
func (b Band) Class() string {
	return "band-" + b.String()
}

func (b Band) String() string {
	switch b {
	case BandComplete:
		return "complete"
	case BandBehind:
		return "behind"
	case BandProgressing:
		return "progressing"
	default:
		return "nearly-done"
	}
}
