package gymspace

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// elementSampler draws a single element of a box. It must only be
// called while holding the lock of the Rng that owns rnd.
type elementSampler[E Number] func(rnd *rand.Rand) E

// newElementSampler returns a sampler for one element with bounds
// [low, high]. Integers are drawn exactly from rnd; floats are drawn
// from a gonum distribution over src, the source behind rnd.
func newElementSampler[E Number](low, high E, src rand.Source) elementSampler[E] {
	if !DtypeOf[E]().IsFloat() {
		return func(rnd *rand.Rand) E {
			return uniformInt(rnd, low, high)
		}
	}
	dist := newFloatDist(float64(low), float64(high), src)
	return func(*rand.Rand) E {
		return E(dist.Rand())
	}
}

// newFloatDist returns the distribution used to sample a float element
// with bounds [low, high]. Bounded elements are sampled uniformly,
// elements bounded on one side from a shifted exponential and
// unbounded elements from a standard normal.
func newFloatDist(low, high float64, src rand.Source) distuv.Rander {
	below, above := boundedBelow(low), boundedAbove(high)
	switch {
	case below && above:
		if math.IsInf(high-low, 0) {
			// The width of the interval overflows, sample over half of
			// it and scale back up
			return clampedUniform{
				dist:  distuv.Uniform{Min: low / 2, Max: high / 2, Src: src},
				scale: 2,
				low:   low,
				high:  high,
			}
		}
		return clampedUniform{
			dist:  distuv.Uniform{Min: low, Max: high, Src: src},
			scale: 1,
			low:   low,
			high:  high,
		}

	case below:
		return shifted{dist: distuv.Exponential{Rate: 1, Src: src}, by: low, sign: 1}

	case above:
		return shifted{dist: distuv.Exponential{Rate: 1, Src: src}, by: high, sign: -1}

	default:
		return distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	}
}

func boundedBelow(low float64) bool {
	return math.Inf(-1) < low
}

func boundedAbove(high float64) bool {
	return math.Inf(1) > high
}

// clampedUniform samples a uniform distribution and clamps the result
// to [low, high] to absorb rounding at the upper end.
type clampedUniform struct {
	dist      distuv.Uniform
	scale     float64
	low, high float64
}

func (c clampedUniform) Rand() float64 {
	return clamp(c.scale*c.dist.Rand(), c.low, c.high)
}

// shifted returns by + sign*X for X drawn from dist
type shifted struct {
	dist distuv.Rander
	by   float64
	sign float64
}

func (s shifted) Rand() float64 {
	return s.by + s.sign*s.dist.Rand()
}
