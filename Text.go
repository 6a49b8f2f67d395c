package gymspace

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/rand"
)

// alphanumeric is the character set of sampled text
const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"

// TextSpace is a space of strings whose length in bytes lies in
// [minLen, maxLen]. Values are UTF-8 text; samples are alphanumeric.
type TextSpace struct {
	rng            *Rng
	minLen, maxLen int
}

// NewText returns a new TextSpace. It fails if minLen < 1 or if
// minLen > maxLen.
func NewText(minLen, maxLen int, opts ...Option) (*TextSpace, error) {
	if minLen < 1 {
		return nil, newSpaceError("newText", -1, fmt.Sprintf("the minimum "+
			"length of the text space must be greater than 0 (min_len: %v)",
			minLen))
	}
	if minLen > maxLen {
		return nil, newSpaceError("newText", -1, fmt.Sprintf("the minimum "+
			"length of the text space cannot be greater than the maximum "+
			"length (min_len: %v, max_len: %v)", minLen, maxLen))
	}

	return &TextSpace{
		rng:    newRngFromOptions(resolve(opts)),
		minLen: minLen,
		maxLen: maxLen,
	}, nil
}

// MinLen returns the minimum length of text in the space
func (t *TextSpace) MinLen() int {
	return t.minLen
}

// MaxLen returns the maximum length of text in the space
func (t *TextSpace) MaxLen() int {
	return t.maxLen
}

// Shape returns a one-dimensional shape of Dynamic extent
func (t *TextSpace) Shape() Shape {
	return Shape{Dynamic}
}

// Dtype returns Uint8, the element type of encoded text
func (t *TextSpace) Dtype() Dtype {
	return Uint8
}

// Seed seeds the sampler for the space
func (t *TextSpace) Seed(seed uint64) {
	t.rng.Seed(seed)
}

// ContainsString returns whether the length of s in bytes lies in
// [minLen, maxLen]
func (t *TextSpace) ContainsString(s string) bool {
	return len(s) >= t.minLen && len(s) <= t.maxLen
}

// ContainsValue returns whether x is valid UTF-8 text of a length
// within the bounds of the space
func (t *TextSpace) ContainsValue(x Array[uint8]) bool {
	return len(x.shape) == 1 && t.containsBytes(x.data)
}

func (t *TextSpace) containsBytes(b []byte) bool {
	return utf8.Valid(b) && t.ContainsString(string(b))
}

// Contains returns whether x is in the space. The argument x may be a
// string, a []byte or a one-dimensional Array[uint8]. Byte values that
// are not valid UTF-8 are not in the space.
func (t *TextSpace) Contains(x interface{}) bool {
	switch v := x.(type) {
	case string:
		return t.ContainsString(v)
	case []byte:
		return t.containsBytes(v)
	case Array[uint8]:
		return t.ContainsValue(v)
	default:
		return false
	}
}

// SampleString draws a length uniformly from [minLen, maxLen] and
// fills it with independently drawn alphanumeric characters
func (t *TextSpace) SampleString() string {
	var b []byte
	t.rng.Do(func(rnd *rand.Rand) {
		n := uniformInt(rnd, t.minLen, t.maxLen)
		b = make([]byte, n)
		for i := range b {
			b[i] = alphanumeric[rnd.Intn(len(alphanumeric))]
		}
	})
	return string(b)
}

// Sample returns SampleString() encoded as a one-dimensional array of
// bytes
func (t *TextSpace) Sample() Array[uint8] {
	b := []byte(t.SampleString())
	return Array[uint8]{shape: Shape{len(b)}, data: b}
}

// SampleValue returns SampleString() as an interface{}
func (t *TextSpace) SampleValue() interface{} {
	return t.SampleString()
}

// Clone returns a copy of the space that shares its sampler
func (t *TextSpace) Clone() *TextSpace {
	c := *t
	return &c
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (t *TextSpace) CloneSeeded(seed uint64) *TextSpace {
	c := t.Clone()
	c.rng = NewRng(seed)
	return c
}

func (t *TextSpace) String() string {
	return fmt.Sprintf("Text(min_len: %v, max_len: %v)", t.minLen, t.maxLen)
}
