package orb

// WideViewport is the width at which the bounds shrink relative to the viewport.
const WideViewport = 1000

type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds is the region an orb center ranges over.
type Bounds struct {
	X, Y Range
}

func (b Bounds) Contains(p Point) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y)
}

// ComputeBounds centers the bounds on the viewport. The half-extent is
// width/2 below WideViewport and width/2.5 at or above it, on both axes.
func ComputeBounds(width, height float64) Bounds {
	maxDist := width / 2
	if width >= WideViewport {
		maxDist = width / 2.5
	}
	cx, cy := width/2, height/2
	return Bounds{
		X: Range{Min: cx - maxDist, Max: cx + maxDist},
		Y: Range{Min: cy - maxDist, Max: cy + maxDist},
	}
}

// mapRange linearly maps n from [start1, stop1] to [start2, stop2] without clamping.
func mapRange(n, start1, stop1, start2, stop2 float64) float64 {
	return (n-start1)/(stop1-start1)*(stop2-start2) + start2
}
