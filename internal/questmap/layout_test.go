package questmap

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate("REQ-001", DefaultWidth, DefaultHeight)
	b := Generate("REQ-001", DefaultWidth, DefaultHeight)
	if a != b {
		t.Fatalf("expected identical layouts, got %+v and %+v", a, b)
	}
	c := Generate("REQ-002", DefaultWidth, DefaultHeight)
	if a == c {
		t.Fatalf("expected different keys to produce different layouts")
	}
}

func TestGenerateKnownLayout(t *testing.T) {
	l := Generate("REQ-001", 1200, 600)
	region := Rect{X: 493.52653235640184, Y: 139.41665890544516, W: 612.5103977601975, H: 307.79934325953946}
	if !near(l.Region.X, region.X) || !near(l.Region.Y, region.Y) || !near(l.Region.W, region.W) || !near(l.Region.H, region.H) {
		t.Fatalf("unexpected region %+v", l.Region)
	}
	first := Point{X: 493.52653235640184, Y: 264.7798254097365}
	last := Point{X: 1106.0369301165993, Y: 273.7891600018643}
	if !near(l.Points[0].X, first.X) || !near(l.Points[0].Y, first.Y) {
		t.Fatalf("unexpected first point %+v", l.Points[0])
	}
	if !near(l.Points[6].X, last.X) || !near(l.Points[6].Y, last.Y) {
		t.Fatalf("unexpected last point %+v", l.Points[6])
	}
}

func TestGenerateRegionStaysInsideMargin(t *testing.T) {
	for _, key := range []string{"REQ-001", "REQ-014", "Cracked shield strap", "ß∂ƒ"} {
		l := Generate(key, 900, 500)
		r := l.Region
		if r.X < margin || r.Y < margin || r.X+r.W > 900-margin+1e-9 || r.Y+r.H > 500-margin+1e-9 {
			t.Fatalf("%s: region escapes margin: %+v", key, r)
		}
		if r.W < 0.5*820-1e-9 || r.W > 0.75*820+1e-9 {
			t.Fatalf("%s: region width outside 50-75%%: %v", key, r.W)
		}
		for j := 1; j < StageCount; j++ {
			if l.Points[j].X <= l.Points[j-1].X {
				t.Fatalf("%s: expected x to increase along the path", key)
			}
		}
	}
}

func TestGenerateDegenerateSize(t *testing.T) {
	l := Generate("", 60, 60)
	if l.Region != (Rect{X: 40, Y: 40}) {
		t.Fatalf("expected collapsed region at the margin, got %+v", l.Region)
	}
	if !near(l.Points[1].Y, 56.0820690210831) {
		t.Fatalf("expected amplitude floor of 40 to apply, got %v", l.Points[1].Y)
	}
}

func TestKeyFallsBackToTitle(t *testing.T) {
	if Key("", "Broken hookshot") != "Broken hookshot" {
		t.Fatalf("expected title fallback")
	}
	if Key("REQ-9", "Broken hookshot") != "REQ-9" {
		t.Fatalf("expected id to win")
	}
}
