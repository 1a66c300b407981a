package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDemoDatasetLoads(t *testing.T) {
	ds, err := Load("")
	if err != nil {
		t.Fatalf("load demo: %v", err)
	}
	if len(ds.Items) == 0 || len(ds.Requests) == 0 || len(ds.AdventureLog) == 0 {
		t.Fatalf("expected populated demo dataset, got %d items %d requests %d log", len(ds.Items), len(ds.Requests), len(ds.AdventureLog))
	}
	for _, r := range ds.Requests {
		if _, ok := ds.Item(r.LinkedItem); !ok {
			t.Fatalf("request %s links unknown item %s", r.ID, r.LinkedItem)
		}
	}
	if ds.LastYear() != 7 {
		t.Fatalf("expected last year 7, got %d", ds.LastYear())
	}
}

func TestTypesAreSortedAndUnique(t *testing.T) {
	ds := Demo()
	want := []string{"armor", "material", "shield", "tool", "weapon"}
	if got := ds.Types(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	body := "items:\n  - id: X-1\n    name: Probe\n    type: tool\n    health_pct: 50\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.ItemName("X-1") != "Probe" {
		t.Fatalf("expected Probe, got %q", ds.ItemName("X-1"))
	}
}

func TestParseRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"syntax":    "items: [",
		"no id":     "items:\n  - name: Nameless\n",
		"duplicate": "items:\n  - id: A\n  - id: A\n",
		"health":    "items:\n  - id: A\n    health_pct: 120\n",
	}
	for name, body := range cases {
		if _, err := Parse([]byte(body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read dataset") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
