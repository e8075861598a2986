package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/config"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "balancectl",
		Short:        "Author and play Rights vs. Duties scenario packs",
		Version:      version.Current().String(),
		SilenceUsage: true,
	}
	root.AddCommand(newLintCmd(), newPlayCmd(), newSimulateCmd())
	return root
}

// loadPack returns the pack at path, or the built-in pack when path is
// empty. The result is always validated.
func loadPack(path string) (*game.Pack, error) {
	if path == "" {
		p := game.BuiltinPack()
		return p, config.ValidatePack(p)
	}
	return config.LoadPack(path)
}

// newRand seeds from the clock when seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
