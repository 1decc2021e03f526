package main

import (
	"fmt"
	"os"

	"github.com/nihei9/altana/prediction"
	"github.com/spf13/cobra"
)

var decisionFlags = struct {
	state *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "decision <automaton file path>",
		Short:   "Print the lookahead set of each alternative of a decision state",
		Example: `  altana decision automaton.json --state 3`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDecision,
	}
	decisionFlags.state = cmd.Flags().IntP("state", "s", 0, "decision state number")
	rootCmd.AddCommand(cmd)
}

func runDecision(cmd *cobra.Command, args []string) error {
	auto, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	network, err := auto.Build()
	if err != nil {
		return err
	}

	s, err := resolveState(network, *decisionFlags.state)
	if err != nil {
		return err
	}

	sets := prediction.NewAnalyzer(network).DecisionLookahead(s)
	for i, set := range sets {
		// A nil set means the alternative has no usable lookahead until a
		// predicate is evaluated.
		if set == nil {
			fmt.Fprintf(os.Stdout, "alt %v: <none>\n", i+1)
			continue
		}
		fmt.Fprintf(os.Stdout, "alt %v: %v\n", i+1, renderSet(auto, set))
	}

	return nil
}
