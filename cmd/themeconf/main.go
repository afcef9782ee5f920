// Command themeconf validates, renders and serves the design-token theme.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/inkblue/themeconf/internal/cli"
)

// Set with -ldflags "-X main.version=…".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}
