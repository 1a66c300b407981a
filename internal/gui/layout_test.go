package gui

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/questmap"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 0.0001 }

func TestQuestScreenLayoutSplitsArea(t *testing.T) {
	lay := questScreenLayout(rl.NewRectangle(0, 0, 1000, 500))
	if !near(lay.Board.Width, 340) {
		t.Fatalf("expected board width 340, got %.2f", lay.Board.Width)
	}
	if !near(lay.Map.X, 352) || !near(lay.Map.Width, 648) {
		t.Fatalf("expected map at 352 width 648, got %.2f %.2f", lay.Map.X, lay.Map.Width)
	}
	if !near(lay.Brief.Y+lay.Brief.Height, 500) {
		t.Fatalf("expected brief to reach the bottom, got %.2f", lay.Brief.Y+lay.Brief.Height)
	}
}

func TestStagePointsStayInsideMap(t *testing.T) {
	rect := rl.NewRectangle(100, 50, 600, 300)
	layout := questmap.Generate("REQ-001", float64(rect.Width), float64(rect.Height))
	for i, p := range stagePoints(layout, rect) {
		if p.X < rect.X || p.X > rect.X+rect.Width || p.Y < rect.Y || p.Y > rect.Y+rect.Height {
			t.Fatalf("expected stage %d inside map, got %.2f,%.2f", i, p.X, p.Y)
		}
	}
}

func TestGridCell(t *testing.T) {
	area := rl.NewRectangle(10, 20, 540, 400)
	cell := gridCell(area, 5, 7, 10)
	if !near(cell.Width, 100) || !near(cell.X, 230) || !near(cell.Y, 130) {
		t.Fatalf("expected 100px cell at 230,130 got %.1f at %.1f,%.1f", cell.Width, cell.X, cell.Y)
	}
}

func TestVisibleFrom(t *testing.T) {
	if got := visibleFrom(15, 23, 12, true); got != 9 {
		t.Fatalf("expected window start 9, got %d", got)
	}
	if got := visibleFrom(22, 23, 12, true); got != 11 {
		t.Fatalf("expected clamp to 11, got %d", got)
	}
	if got := visibleFrom(22, 23, 12, false); got != 0 {
		t.Fatalf("expected inactive list to start at 0, got %d", got)
	}
}

func TestNavLabel(t *testing.T) {
	if got := navLabel(input.ScreenInventory); got != "Inventory [i]" {
		t.Fatalf("expected Inventory [i], got %q", got)
	}
}

func TestControlBindingsCoverEveryAction(t *testing.T) {
	got := controlBindings()
	if len(got) != len(input.Actions()) {
		t.Fatalf("expected %d bindings, got %d", len(input.Actions()), len(got))
	}
	for _, b := range got {
		if b.Binding == "" {
			t.Fatalf("expected a binding for %s", b.Label)
		}
	}
}
