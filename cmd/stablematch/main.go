// Command stablematch computes stable matchings and runs engine trials.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stablematch/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
