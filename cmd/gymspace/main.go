// Command gymspace constructs a space from command line flags, draws
// samples from it and tests values for membership.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCommand := GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
