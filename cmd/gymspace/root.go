package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samuelfneumann/gymspace"
	"github.com/spf13/cobra"
)

var (
	seed     uint64
	samples  int
	contains []string
)

// GetRootCommand returns the root command with one subcommand per
// space. Flags are reset to their defaults on each call.
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gymspace",
		Short:         "Sample from and query Gymnasium spaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed of the sampler, drawn from system entropy if unset")
	rootCommand.PersistentFlags().IntVarP(&samples, "samples", "s", 1, "Number of samples to draw")
	rootCommand.PersistentFlags().StringArrayVarP(&contains, "contains", "c", nil, "Value to test for membership, may be repeated")

	rootCommand.AddCommand(DiscreteCommand())
	rootCommand.AddCommand(BoxCommand())
	rootCommand.AddCommand(MultiDiscreteCommand())
	rootCommand.AddCommand(MultiBinaryCommand())
	rootCommand.AddCommand(TextCommand())
	return rootCommand
}

// spaceOptions returns the options shared by every space
func spaceOptions(cmd *cobra.Command) []gymspace.Option {
	if cmd.Flags().Changed("seed") {
		return []gymspace.Option{gymspace.WithSeed(seed)}
	}
	return nil
}

// run prints the space, draws the requested number of samples and
// reports the membership of each --contains value, parsed with parse
func run(cmd *cobra.Command, space gymspace.Space,
	parse func(string) (interface{}, error)) error {
	if samples < 0 {
		return fmt.Errorf("run: cannot draw %v samples", samples)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, space)
	for i := 0; i < samples; i++ {
		fmt.Fprintln(out, format(space.SampleValue()))
	}

	for _, text := range contains {
		value, err := parse(text)
		if err != nil {
			return fmt.Errorf("run: could not parse %q: %w", text, err)
		}
		fmt.Fprintf(out, "contains %v: %v\n", text, space.Contains(value))
	}
	return nil
}

// format renders a sample as its flat elements
func format(x interface{}) string {
	switch v := x.(type) {
	case string:
		return strconv.Quote(v)
	case gymspace.Array[bool]:
		return fmt.Sprint(v.Data())
	case interface{ Shape() gymspace.Shape }:
		if data, err := gymspace.Flatten(x); err == nil {
			return fmt.Sprint(data)
		}
	}
	return fmt.Sprint(x)
}

// splitList splits a comma separated list, ignoring surrounding
// brackets and whitespace
func splitList(text string) []string {
	text = strings.Trim(strings.TrimSpace(text), "[]()")
	if text == "" {
		return nil
	}
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseArray parses a comma separated list into an Array of the given
// shape. Lists of the wrong length are returned as a slice.
func parseArray[E any](text string, shape gymspace.Shape,
	parse func(string) (E, error)) (interface{}, error) {
	fields := splitList(text)
	data := make([]E, len(fields))
	for i, field := range fields {
		v, err := parse(field)
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	if len(data) != shape.NumElements() {
		return data, nil
	}
	return gymspace.NewArray(data, shape)
}

func parseInt64(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

func parseFloat64(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
