package forge

import (
	"context"
	"testing"
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
)

func waitOutcome(t *testing.T, s *Smith) Outcome {
	t.Helper()
	select {
	case out := <-s.resultsChan():
		return out
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for forge")
	}
	return Outcome{}
}

func loadedSmith(t *testing.T) *Smith {
	t.Helper()
	ds := catalog.Demo()
	s := NewSmith(NewEngine(DefaultRules()), 0)
	for _, id := range []string{"I-002", "I-101", "I-102"} {
		it, _ := ds.Item(id)
		if !s.Pot().Add(it) {
			t.Fatalf("add %s failed", id)
		}
	}
	return s
}

func TestSmithCommitProducesOneResult(t *testing.T) {
	ctx := context.Background()
	s := loadedSmith(t)

	if !s.Commit(ctx) {
		t.Fatalf("expected first commit to start")
	}
	if s.Commit(ctx) {
		t.Fatalf("expected second commit while busy to be refused")
	}
	out := waitOutcome(t, s)
	if !s.Apply(ctx, out) {
		t.Fatalf("expected apply on a live context")
	}
	if !out.Discovered || out.Recipe.ID != "dragon-leather-shield" {
		t.Fatalf("expected dragon recipe discovery, got %+v", out.Recipe)
	}
	if out.Base().ID != "I-002" {
		t.Fatalf("expected base I-002, got %s", out.Base().ID)
	}
	if s.Pot().Len() != 0 || s.Pot().Busy() {
		t.Fatalf("expected empty idle pot")
	}
	if res, _ := s.Pot().Result(); res.Name != "Dragon-Leather Hylian Shield" {
		t.Fatalf("unexpected result %q", res.Name)
	}
	if _, ok := s.Poll(ctx); ok {
		t.Fatalf("expected nothing else to poll")
	}
}

func TestSmithCancelledContextDropsCompletion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := loadedSmith(t)
	s.delay = time.Hour
	if !s.Commit(ctx) {
		t.Fatalf("expected commit to start")
	}
	cancel()
	select {
	case <-s.resultsChan():
		t.Fatalf("expected no outcome after cancellation")
	case <-time.After(50 * time.Millisecond):
	}
	if s.Apply(ctx, Outcome{}) {
		t.Fatalf("expected apply to refuse a cancelled context")
	}
}

func TestSmithPreviewAndHints(t *testing.T) {
	s := NewSmith(NewEngine(DefaultRules()), 0)
	if _, ok := s.Preview(); ok {
		t.Fatalf("expected no preview for an empty pot")
	}
	if s.Hints() != nil {
		t.Fatalf("expected no hints for an empty pot")
	}
	s.Pot().Add(catalog.Item{ID: "S", Name: "Steel Sword", Type: "weapon"})
	s.Pot().Add(catalog.Item{ID: "C", Name: "Blessed Fire Crystal"})
	hints := s.Hints()
	if len(hints) != 2 || hints[0].RuleID != "blessed-steel-sword" || hints[0].Name != "Blessed Steel Sword" {
		t.Fatalf("unexpected hints %+v", hints)
	}
	preview, ok := s.Preview()
	if !ok || preview.Name != "Blessed Steel Sword" {
		t.Fatalf("unexpected preview %+v", preview)
	}
}
