package input

import (
	"slices"
	"testing"
)

func TestEdgeDetectorReportsOnlyRisingEdges(t *testing.T) {
	d := NewEdgeDetector[int]()
	if got := d.Update(map[int]bool{0: true, 3: false}); !slices.Equal(got, []int{0}) {
		t.Fatalf("expected [0], got %v", got)
	}
	if got := d.Update(map[int]bool{0: true}); len(got) != 0 {
		t.Fatalf("expected no edge while held, got %v", got)
	}
	if got := d.Update(map[int]bool{0: false}); len(got) != 0 {
		t.Fatalf("expected no edge on release, got %v", got)
	}
	if got := d.Update(map[int]bool{0: true}); !slices.Equal(got, []int{0}) {
		t.Fatalf("expected edge after release, got %v", got)
	}
}

func TestEdgeDetectorSortsSimultaneousPresses(t *testing.T) {
	d := NewEdgeDetector[int]()
	got := d.Update(map[int]bool{15: true, 0: true, 9: true})
	if !slices.Equal(got, []int{0, 9, 15}) {
		t.Fatalf("expected ascending edges, got %v", got)
	}
}

func TestEdgeDetectorWorksForStringKeys(t *testing.T) {
	d := NewEdgeDetector[string]()
	d.Update(map[string]bool{"enter": true})
	if !d.Held("enter") {
		t.Fatalf("expected enter to be held")
	}
	got := d.Update(map[string]bool{"enter": true, "esc": true})
	if !slices.Equal(got, []string{"esc"}) {
		t.Fatalf("expected [esc], got %v", got)
	}
	d.Reset()
	if d.Held("enter") {
		t.Fatalf("expected reset to clear held state")
	}
}
