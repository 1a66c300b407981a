// Package questmap lays out a quest's stages as a winding path. Layouts are
// a pure function of the quest key and the map size.
package questmap

import "math"

const (
	// StageCount is the number of points on every path.
	StageCount = 7
	margin     = 40.0

	DefaultWidth  = 1200.0
	DefaultHeight = 600.0
)

type Point struct {
	X, Y float64
}

// Rect is the sub-region of the map the path is drawn in.
type Rect struct {
	X, Y, W, H float64
}

type Layout struct {
	Region Rect
	Points [StageCount]Point
}

// Key returns the identifier a quest's layout is seeded from.
func Key(id, title string) string {
	if id != "" {
		return id
	}
	return title
}

// Generate places the path for key on a width x height map. The region
// covers 50-75% of the area inside a 40 unit margin; the path drifts along a
// gentle slope and alternates between a wide and a narrow sine swing.
func Generate(key string, width, height float64) Layout {
	rng := NewRNG(Seed(key))

	availW := math.Max(0, width-margin*2)
	availH := math.Max(0, height-margin*2)
	fracW := 0.5 + rng.Float64()*0.25
	fracH := 0.5 + rng.Float64()*0.25
	rectW := availW * fracW
	rectH := availH * fracH
	offsetX := margin + rng.Float64()*(availW-rectW)
	offsetY := margin + rng.Float64()*(availH-rectH)

	slope := (rng.Float64() - 0.5) * 0.6
	wave := 0.7 + rng.Float64()*0.6
	amplitude := math.Max(40, math.Min(90, rectH*0.25))

	out := Layout{Region: Rect{X: offsetX, Y: offsetY, W: rectW, H: rectH}}
	for j := 0; j < StageCount; j++ {
		t := float64(j) / float64(StageCount-1)
		swing := 0.9
		if j%2 == 1 {
			swing = 0.6
		}
		baseY := offsetY + rectH*0.5 + (t-0.5)*slope*rectH
		out.Points[j] = Point{
			X: offsetX + t*rectW,
			Y: baseY + math.Sin(float64(j)*wave)*amplitude*swing,
		}
	}
	return out
}

// Scale maps the layout onto a target rectangle of a different size.
func (l Layout) Scale(x, y, sx, sy float64) [StageCount]Point {
	var out [StageCount]Point
	for i, p := range l.Points {
		out[i] = Point{X: x + p.X*sx, Y: y + p.Y*sy}
	}
	return out
}
