package questmap

import (
	"strings"
	"testing"
)

func TestProgressAndNextStage(t *testing.T) {
	if p := Progress("Closed"); p != StageCount {
		t.Fatalf("expected closed requests to be complete, got %d", p)
	}
	if p := Progress("open"); p != 2 {
		t.Fatalf("expected open requests at 2, got %d", p)
	}
	if n := NextStage(StageCount); n != StageCount-1 {
		t.Fatalf("expected next stage capped at last, got %d", n)
	}
	if n := NextStage(2); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}

func TestStateOf(t *testing.T) {
	if StateOf(1, 2) != StageDone || StateOf(2, 2) != StageCurrent || StateOf(3, 2) != StagePending {
		t.Fatalf("unexpected states for an open request")
	}
	if StateOf(6, StageCount) != StageDone {
		t.Fatalf("expected every stage done for a closed request")
	}
}

func TestBriefForNamesLinkedItem(t *testing.T) {
	b := BriefFor(0, "Hylian Shield")
	if b.Stage != "Investigate" || !strings.Contains(b.Explanation, "Hylian Shield") {
		t.Fatalf("unexpected brief: %+v", b)
	}
	if len(b.Tasks) != 3 {
		t.Fatalf("expected three tasks, got %d", len(b.Tasks))
	}
	b.Tasks[0] = "changed"
	if BriefFor(0, "x").Tasks[0] == "changed" {
		t.Fatalf("expected tasks to be copied")
	}
	if BriefFor(0, "").Explanation != "Confirm the issue and gather evidence on item." {
		t.Fatalf("expected generic item name")
	}
	if BriefFor(99, "x").Stage != "Close" {
		t.Fatalf("expected out of range stage to clamp")
	}
}

func TestWrapLine(t *testing.T) {
	got := WrapLine("Confirm the issue and gather evidence on the Royal Guard Shield.", BriefWidth)
	want := []string{"Confirm the issue and gather evidence on the", "Royal Guard Shield."}
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	long := WrapLine("supercalifragilistic go", 5)
	if len(long) != 2 || long[0] != "supercalifragilistic" {
		t.Fatalf("expected long word on its own line, got %q", long)
	}
	if WrapLine("   ", 10) != nil {
		t.Fatalf("expected nil for blank text")
	}
}
