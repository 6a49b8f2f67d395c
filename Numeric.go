package gymspace

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// intLimits returns the smallest and largest values of E
func intLimits[E constraints.Integer]() (E, E) {
	var hi E = 1
	for {
		next := hi<<1 | 1
		if next <= hi {
			break
		}
		hi = next
	}
	var zero E
	if zero-1 < zero {
		return -hi - 1, hi
	}
	return 0, hi
}

// offset maps v onto [0, 2^bits) in order, so that differences between
// offsets never overflow. Conversion of a signed value to uint64 sign
// extends, which makes the subtraction exact modulo 2^64.
func offset[E constraints.Integer](v E) uint64 {
	lo, _ := intLimits[E]()
	return uint64(v) - uint64(lo)
}

// overflows returns whether start + n exceeds the largest value of E.
// n must be positive.
func overflows[E constraints.Integer](start E, n uint64) bool {
	_, hi := intLimits[E]()
	return n > offset(hi)-offset(start)
}

// uniformInt draws uniformly from the inclusive range [low, high] of
// an integer-valued E. It must only be called for integer Dtypes.
func uniformInt[E Number](rnd *rand.Rand, low, high E) E {
	span := uint64(high) - uint64(low)
	if span == math.MaxUint64 {
		return E(uint64(low) + rnd.Uint64())
	}
	return E(uint64(low) + rnd.Uint64n(span+1))
}

// clamp restricts x to [low, high]
func clamp(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
