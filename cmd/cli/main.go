// csvproc - CSV Record Validation Tool
//
// csvproc reads a comma-delimited file, validates each row against a fixed
// schema, and writes the accepted rows to a new file while reporting per-row
// diagnostics.
package main

import (
	"os"

	"csvproc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
