package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
)

func newPlayCmd() *cobra.Command {
	var packPath string
	var seed int64
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a scenario pack interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := loadPack(packPath)
			if err != nil {
				return err
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), pack, newRand(seed))
		},
	}
	cmd.Flags().StringVar(&packPath, "pack", "", "scenario pack file (default: built-in pack)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for events (0 uses the clock)")
	return cmd
}

// play runs one playthrough reading choices line by line from in. Typing
// "q" or reaching EOF stops early.
func play(in io.Reader, out io.Writer, pack *game.Pack, r engine.Roller) error {
	sc := bufio.NewScanner(in)
	st := engine.Restart()
	for {
		switch st.Phase {
		case game.PhasePlaying:
			scenario := pack.Scenarios[st.ScenarioIndex]
			fmt.Fprintf(out, "\n[%d/%d] %s\n%s\n", st.ScenarioIndex+1, pack.Len(), scenario.Title, scenario.Description)
			for i, tok := range scenario.Tokens {
				fmt.Fprintf(out, "  %d) %s\n", i+1, tok.Label)
			}
			fmt.Fprint(out, "choose> ")
			if !sc.Scan() {
				return sc.Err()
			}
			choice := strings.TrimSpace(sc.Text())
			if choice == "q" {
				return nil
			}
			next, err := engine.CommitByID(st, pack.Scenarios, tokenFor(scenario, choice), r)
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			st = next
		case game.PhaseDebrief:
			d := st.Debrief
			fmt.Fprintf(out, "\n%s: %s\n", d.Token.Label, d.Token.Explanation)
			if d.Event != nil {
				fmt.Fprintf(out, "Event: %s\n", d.Event.Description)
			}
			fmt.Fprintf(out, "Freedom %d | Order %d\n", d.Freedom, d.Order)
			fmt.Fprint(out, "press enter to continue> ")
			if !sc.Scan() {
				return sc.Err()
			}
			if strings.TrimSpace(sc.Text()) == "q" {
				return nil
			}
			st, _ = engine.AdvanceFrom(st, pack.Len())
		case game.PhaseEnd:
			info, _ := engine.Describe(engine.Judge(st.Freedom, st.Order))
			fmt.Fprintf(out, "\nFinal: Freedom %d | Order %d\n%s\n%s\n", st.Freedom, st.Order, info.Title, info.Explanation)
			return nil
		}
	}
}

// tokenFor accepts a 1-based menu number or a token id.
func tokenFor(sc game.Scenario, choice string) string {
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(sc.Tokens) {
		return sc.Tokens[n-1].ID
	}
	return choice
}
