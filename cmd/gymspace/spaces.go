package main

import (
	"fmt"
	"strconv"

	"github.com/samuelfneumann/gymspace"
	"github.com/spf13/cobra"
)

// DiscreteCommand samples from a DiscreteSpace of int64
func DiscreteCommand() *cobra.Command {
	var n int
	var start int64

	cmd := &cobra.Command{
		Use:   "discrete",
		Short: "The integers start, start+1, ..., start+n-1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := gymspace.NewDiscrete(n, start, spaceOptions(cmd)...)
			if err != nil {
				return err
			}
			return run(cmd, space, func(text string) (interface{}, error) {
				return parseInt64(text)
			})
		},
	}
	cmd.PersistentFlags().IntVar(&n, "n", 2, "Number of elements")
	cmd.PersistentFlags().Int64Var(&start, "start", 0, "Smallest element")
	return cmd
}

// BoxCommand samples from a BoxSpace of float64. A single low and high
// give an identical box of the given shape, lists give an independent
// box of one dimension.
func BoxCommand() *cobra.Command {
	var low, high []float64
	var shape []int

	cmd := &cobra.Command{
		Use:   "box",
		Short: "A box in R^n, possibly unbounded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := newBox(low, high, shape, spaceOptions(cmd))
			if err != nil {
				return err
			}
			return run(cmd, space, func(text string) (interface{}, error) {
				return parseArray(text, space.Shape(), parseFloat64)
			})
		},
	}
	cmd.PersistentFlags().Float64SliceVar(&low, "low", []float64{-1}, "Lower bounds, may be -Inf")
	cmd.PersistentFlags().Float64SliceVar(&high, "high", []float64{1}, "Upper bounds, may be +Inf")
	cmd.PersistentFlags().IntSliceVar(&shape, "shape", []int{1}, "Shape of an identical box")
	return cmd
}

func newBox(low, high []float64, shape []int,
	opts []gymspace.Option) (*gymspace.BoxSpace[float64], error) {
	if len(low) == 1 && len(high) == 1 {
		b, err := gymspace.NewBoxIdentical(low[0], high[0],
			gymspace.Shape(shape), opts...)
		if err != nil {
			return nil, err
		}
		return b.Box(), nil
	}
	if len(low) != len(high) {
		return nil, fmt.Errorf("newBox: %v lower bounds but %v upper bounds",
			len(low), len(high))
	}
	b, err := gymspace.NewBoxIndependent(gymspace.Vector(low...),
		gymspace.Vector(high...), opts...)
	if err != nil {
		return nil, err
	}
	return b.Box(), nil
}

// MultiDiscreteCommand samples from a MultiDiscreteSpace of int64
func MultiDiscreteCommand() *cobra.Command {
	var n, start []int64

	cmd := &cobra.Command{
		Use:   "multi-discrete",
		Short: "A vector of discrete spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(start) == 0 {
				start = make([]int64, len(n))
			}
			space, err := gymspace.NewMultiDiscrete(gymspace.Vector(n...),
				gymspace.Vector(start...), spaceOptions(cmd)...)
			if err != nil {
				return err
			}
			return run(cmd, space, func(text string) (interface{}, error) {
				return parseArray(text, space.Shape(), parseInt64)
			})
		},
	}
	cmd.PersistentFlags().Int64SliceVar(&n, "n", []int64{2}, "Number of values of each element")
	cmd.PersistentFlags().Int64SliceVar(&start, "start", nil, "Smallest value of each element, zero if unset")
	return cmd
}

// MultiBinaryCommand samples from a MultiBinarySpace
func MultiBinaryCommand() *cobra.Command {
	var shape []int

	cmd := &cobra.Command{
		Use:   "multi-binary",
		Short: "An array of binary values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := gymspace.NewMultiBinary(gymspace.Shape(shape),
				spaceOptions(cmd)...)
			if err != nil {
				return err
			}
			return run(cmd, space, func(text string) (interface{}, error) {
				return parseArray(text, space.Shape(), strconv.ParseBool)
			})
		},
	}
	cmd.PersistentFlags().IntSliceVar(&shape, "shape", []int{4}, "Shape of the space")
	return cmd
}

// TextCommand samples from a TextSpace
func TextCommand() *cobra.Command {
	var minLen, maxLen int

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Strings of bounded length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := gymspace.NewText(minLen, maxLen, spaceOptions(cmd)...)
			if err != nil {
				return err
			}
			return run(cmd, space, func(text string) (interface{}, error) {
				return text, nil
			})
		},
	}
	cmd.PersistentFlags().IntVar(&minLen, "min-len", 1, "Minimum length in bytes")
	cmd.PersistentFlags().IntVar(&maxLen, "max-len", 8, "Maximum length in bytes")
	return cmd
}
