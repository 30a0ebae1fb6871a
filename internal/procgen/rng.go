package procgen

import (
	"fmt"
	"hash/fnv"
)

// Linear congruential constants from Numerical Recipes. These are part of
// the save compatibility contract: changing them regenerates every galaxy
// differently, invalidating all stored seeds.
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

// Stream is a deterministic pseudo-random stream. The same seed always
// produces the same unbounded sequence of outputs; no external entropy is
// ever mixed in. A Stream owns its state exclusively and must not be
// shared across goroutines.
type Stream struct {
	state uint64
}

// NewStream creates a stream from an integer seed.
func NewStream(seed int64) *Stream {
	s := &Stream{state: uint64(seed)}
	// One step decorrelates adjacent seeds before the first draw.
	s.step()
	return s
}

// DeriveSeed mixes a parent seed with a salt into an independent sub-seed.
// Used so system i can be regenerated from (galaxySeed, i) without
// generating systems 0..i-1 first.
func DeriveSeed(seed int64, salt string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", seed, salt)
	return int64(h.Sum64())
}

// DeriveStream returns an independently seeded stream for the given salt.
func DeriveStream(seed int64, salt string) *Stream {
	return &Stream{state: uint64(DeriveSeed(seed, salt))}
}

func (s *Stream) step() uint64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return s.state
}

// Next returns the next value in [0, 1).
func (s *Stream) Next() float64 {
	// Top 53 bits map exactly onto the float64 mantissa.
	return float64(s.step()>>11) / (1 << 53)
}

// Range returns a value in [min, max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// IntN returns an integer in [0, n). Non-positive n returns 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// Chance returns true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}
