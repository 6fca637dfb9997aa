package domain

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Classify treats a square image as landscape; only height > width is portrait.
func Classify(width, height int) Orientation {
	if height > width {
		return Portrait
	}
	return Landscape
}

type OrientationCounts struct {
	Portrait  int
	Landscape int
	Total     int
}

func (c *OrientationCounts) Add(o Orientation) {
	switch o {
	case Portrait:
		c.Portrait++
	case Landscape:
		c.Landscape++
	default:
		return
	}
	c.Total++
}

// Shares returns the portrait and landscape percentages. ok is false when
// nothing was counted.
func (c OrientationCounts) Shares() (portrait, landscape float64, ok bool) {
	if c.Total <= 0 {
		return 0, 0, false
	}
	total := float64(c.Total)
	return float64(c.Portrait) / total * 100, float64(c.Landscape) / total * 100, true
}

// StatsResult is the outcome of measuring one file in the stats directory.
type StatsResult struct {
	Path        string
	Width       int
	Height      int
	Orientation Orientation
	Err         error
}
