package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// AllTypes is the category that matches every item type.
const AllTypes = "all"

// Query filters items by free text and type. Text matches as a
// case-insensitive substring of name, description and notes.
type Query struct {
	Text string
	Type string
}

func (q Query) needle() string {
	return strings.ToLower(strings.TrimSpace(q.Text))
}

func (q Query) typeMatches(it Item) bool {
	return q.Type == "" || q.Type == AllTypes || it.Type == q.Type
}

func haystack(it Item) string {
	return strings.ToLower(it.Name + " " + it.Description + " " + it.Notes)
}

func (q Query) Matches(it Item) bool {
	if !q.typeMatches(it) {
		return false
	}
	needle := q.needle()
	return needle == "" || strings.Contains(haystack(it), needle)
}

// Filter returns the items q matches, in dataset order. When the text
// matches nothing, Filter retries with typo tolerance: each search word of
// four or more letters may be a small edit away from a word of similar
// length in the item.
func Filter(items []Item, q Query) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if q.Matches(it) {
			out = append(out, it)
		}
	}
	needle := q.needle()
	if len(out) > 0 || needle == "" {
		return out
	}
	for _, it := range items {
		if q.typeMatches(it) && fuzzyMatch(needle, haystack(it)) {
			out = append(out, it)
		}
	}
	return out
}

// CycleType steps through "all" followed by types, wrapping in both
// directions.
func CycleType(current string, types []string, step int) string {
	order := append([]string{AllTypes}, types...)
	idx := 0
	for i, t := range order {
		if t == current {
			idx = i
			break
		}
	}
	n := len(order)
	return order[((idx+step)%n+n)%n]
}

func fuzzyMatch(needle, hay string) bool {
	terms := strings.Fields(normaliseText(needle))
	if len(terms) == 0 {
		return false
	}
	words := strings.Fields(normaliseText(hay))
	for _, term := range terms {
		if len(term) < 4 {
			if !strings.Contains(hay, term) {
				return false
			}
			continue
		}
		if !nearWord(term, words) {
			return false
		}
	}
	return true
}

func nearWord(term string, words []string) bool {
	limit := levenshteinLimit(len(term))
	for _, w := range words {
		if d := len(w) - len(term); d < -1 || d > 1 {
			continue
		}
		if levenshtein.ComputeDistance(term, w) <= limit {
			return true
		}
	}
	return false
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// normaliseText lower-cases raw, keeps letters and digits, and collapses
// everything else to single spaces.
func normaliseText(raw string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
