// Package catalog holds the read-only workshop dataset: items, requests,
// recorded changes and the adventure log.
package catalog

import (
	_ "embed"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

type Item struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Type        string  `yaml:"type" json:"type"`
	Revision    string  `yaml:"revision" json:"revision"`
	Description string  `yaml:"description" json:"description"`
	Status      string  `yaml:"status" json:"status"`
	Supplier    string  `yaml:"supplier" json:"supplier"`
	Cost        float64 `yaml:"cost" json:"cost"`
	HealthPct   int     `yaml:"health_pct" json:"health_pct"`
	Notes       string  `yaml:"notes" json:"notes"`
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Request is an incoming work item; the quest board shows one per request.
type Request struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Origin      string   `yaml:"origin" json:"origin"`
	Priority    Priority `yaml:"priority" json:"priority"`
	LinkedItem  string   `yaml:"linked_item" json:"linked_item"`
	Status      string   `yaml:"status" json:"status"`
}

type ChangeType string

const (
	ChangeECO     ChangeType = "ECO"
	ChangeVariant ChangeType = "Variant"
)

type Change struct {
	ID           string     `yaml:"id" json:"id"`
	Type         ChangeType `yaml:"type" json:"type"`
	Title        string     `yaml:"title" json:"title"`
	Description  string     `yaml:"description" json:"description"`
	AffectedItem string     `yaml:"affected_item" json:"affected_item"`
	FromRev      string     `yaml:"from_rev" json:"from_rev"`
	ToRev        string     `yaml:"to_rev" json:"to_rev"`
	Rationale    string     `yaml:"rationale" json:"rationale"`
	Status       string     `yaml:"status" json:"status"`
}

type LogEntry struct {
	Year  int    `yaml:"year" json:"year"`
	Entry string `yaml:"entry" json:"entry"`
}

type Dataset struct {
	Items        []Item     `yaml:"items"`
	Requests     []Request  `yaml:"requests"`
	Changes      []Change   `yaml:"changes"`
	AdventureLog []LogEntry `yaml:"adventure_log"`
}

// Load reads the dataset at path, or the bundled demo dataset when path is
// empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Parse(demoYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", path)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return ds, nil
}

// Demo returns the bundled dataset.
func Demo() *Dataset {
	ds, err := Parse(demoYAML)
	if err != nil {
		panic(err)
	}
	return ds
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, errors.Wrap(err, "parse dataset")
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (d *Dataset) validate() error {
	seen := make(map[string]bool, len(d.Items))
	for i, it := range d.Items {
		if it.ID == "" {
			return errors.Errorf("item %d has no id", i)
		}
		if seen[it.ID] {
			return errors.Errorf("duplicate item id %s", it.ID)
		}
		if it.HealthPct < 0 || it.HealthPct > 100 {
			return errors.Errorf("item %s health %d outside 0-100", it.ID, it.HealthPct)
		}
		seen[it.ID] = true
	}
	return nil
}

func (d *Dataset) Item(id string) (Item, bool) {
	for _, it := range d.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ItemName returns the name of the item with id, or "" when unknown.
func (d *Dataset) ItemName(id string) string {
	it, _ := d.Item(id)
	return it.Name
}

// Types returns the distinct item types, sorted.
func (d *Dataset) Types() []string {
	var types []string
	for _, it := range d.Items {
		if !slices.Contains(types, it.Type) {
			types = append(types, it.Type)
		}
	}
	slices.Sort(types)
	return types
}

// LastYear is the latest year in the dataset log, or 0 when it is empty.
func (d *Dataset) LastYear() int {
	year := 0
	for _, e := range d.AdventureLog {
		year = max(year, e.Year)
	}
	return year
}
