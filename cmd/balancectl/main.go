// Command balancectl lints, plays and simulates Rights vs. Duties scenario
// packs from the terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
