package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/config"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <pack>...",
		Short: "Validate scenario pack files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				pack, err := config.LoadPack(path)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", path, err)
					continue
				}
				tokens, events := 0, 0
				for _, sc := range pack.Scenarios {
					tokens += len(sc.Tokens)
					events += len(sc.Events)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s): %d scenarios, %d tokens, %d events\n", path, pack.Name, pack.Len(), tokens, events)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d packs failed validation", failed, len(args))
			}
			return nil
		},
	}
}
