package gymspace

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Rng is the seedable pseudo-random source of a space. A single Rng
// may be shared by several handles of a space (see Clone), so every
// draw and every reseed happens under its mutex: no two samples ever
// read the same generator state, and a concurrent Sample observes
// either the old or the new seed in its entirety.
type Rng struct {
	mu  sync.Mutex
	src rand.Source
	rnd *rand.Rand
}

// NewRng returns a new Rng seeded with seed
func NewRng(seed uint64) *Rng {
	src := rand.NewSource(seed)
	return &Rng{src: src, rnd: rand.New(src)}
}

// newRngFromOptions seeds a new Rng from the options or, when no seed
// was given, from system entropy
func newRngFromOptions(o options) *Rng {
	if o.seeded {
		return NewRng(o.seed)
	}
	return NewRng(entropySeed())
}

// entropySeed reads a seed from the system entropy source, falling
// back to the wall clock if it is unavailable
func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Seed replaces the generator state deterministically
func (r *Rng) Seed(seed uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Seed(seed)
}

// Source returns the underlying source. Distributions built on it may
// only be sampled through Do.
func (r *Rng) Source() rand.Source {
	return r.src
}

// Do calls f with exclusive access to the generator
func (r *Rng) Do(f func(rnd *rand.Rand)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f(r.rnd)
}

// Option configures the construction of a space
type Option func(*options)

type options struct {
	seed   uint64
	seeded bool
}

// WithSeed seeds the sampler of a space. Two spaces with identical
// bounds constructed with the same seed produce identical samples.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
