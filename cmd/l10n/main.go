package main

import (
	"os"

	"github.com/dmitrymomot/l10n/cmd/l10n/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
