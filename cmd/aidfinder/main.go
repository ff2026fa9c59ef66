package main

import (
	"fmt"
	"os"

	"github.com/urban-refuge/aidfinder/internal/adapters/driving/cli"
)

// version is overridden at release time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
