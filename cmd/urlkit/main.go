// Command urlkit inspects and rewrites URLs from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/ghettovoice/urlkit/internal/errorutil"
)

func main() {
	app := makeURLKitCmd()
	if err := app.cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns 2 for malformed input and invalid arguments, 1 otherwise.
func exitCode(err error) int {
	if errorutil.IsGrammarErr(err) || errorutil.IsInvalidArgumentErr(err) {
		return 2
	}
	return 1
}
