package questmap

import "unicode/utf16"

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// Seed hashes id with 32-bit FNV-1a over its UTF-16 code units, so the same
// quest lays out identically on every client.
func Seed(id string) uint32 {
	h := fnvOffset32
	for _, unit := range utf16.Encode([]rune(id)) {
		h ^= uint32(unit)
		h *= fnvPrime32
	}
	return h
}

// RNG is a mulberry32 generator.
type RNG struct {
	state uint32
}

func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Float64 returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}
