// Package wrappers implements the Gymnasium environment wrappers for
// gymspace Environments. Each wrapper embeds the Environment it wraps
// and overrides the methods it transforms.
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gymspace"
)

// floatBox returns the space as a float64 BoxSpace
func floatBox(space gymspace.Space) (*gymspace.BoxSpace[float64], bool) {
	box, ok := space.(*gymspace.BoxSpace[float64])
	return box, ok && box != nil
}

// toFloatArray converts x into a float64 Array of the given shape. The
// argument x may be anything gymspace.Flatten accepts.
func toFloatArray(x interface{}, shape gymspace.Shape) (gymspace.Array[float64],
	error) {
	if a, ok := x.(gymspace.Array[float64]); ok && a.Shape().Equal(shape) {
		return a, nil
	}
	data, err := gymspace.Flatten(x)
	if err != nil {
		return gymspace.Array[float64]{}, err
	}
	a, err := gymspace.NewArray(data, shape)
	if err != nil {
		return gymspace.Array[float64]{}, fmt.Errorf("value of %v elements "+
			"does not fit shape %v", len(data), shape)
	}
	return a, nil
}
