package input

import (
	"cmp"
	"slices"
)

// EdgeDetector turns polled pressed-state snapshots into press edges. A key
// is reported once on its false to true transition and not again until it
// has been seen released.
type EdgeDetector[K cmp.Ordered] struct {
	prev map[K]bool
}

func NewEdgeDetector[K cmp.Ordered]() *EdgeDetector[K] {
	return &EdgeDetector[K]{prev: map[K]bool{}}
}

// Update records the snapshot and returns the keys that went down since the
// previous one, in ascending order. Keys missing from the snapshot count as
// released.
func (d *EdgeDetector[K]) Update(pressed map[K]bool) []K {
	var rising []K
	next := make(map[K]bool, len(pressed))
	for k, down := range pressed {
		if !down {
			continue
		}
		next[k] = true
		if !d.prev[k] {
			rising = append(rising, k)
		}
	}
	d.prev = next
	slices.Sort(rising)
	return rising
}

// Held reports whether k was down in the last snapshot.
func (d *EdgeDetector[K]) Held(k K) bool {
	return d.prev[k]
}

func (d *EdgeDetector[K]) Reset() {
	d.prev = map[K]bool{}
}
