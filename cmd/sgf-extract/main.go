// sgf-extract parses SGF game records and reports their structure and
// property diagnostics.
package main

import (
	"os"

	"github.com/mipli/sgf-parser/cmd/sgf-extract/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
