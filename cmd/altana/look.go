package main

import (
	"fmt"
	"os"

	"github.com/nihei9/altana/atn"
	"github.com/nihei9/altana/prediction"
	"github.com/spf13/cobra"
)

var lookFlags = struct {
	state *int
	stop  *int
	root  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "look <automaton file path>",
		Short:   "Print the lookahead set of a state",
		Example: `  altana look automaton.json --state 3 --root`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLook,
	}
	lookFlags.state = cmd.Flags().IntP("state", "s", 0, "state number to query")
	lookFlags.stop = cmd.Flags().Int("stop", -1, "stop state number the walk doesn't proceed past")
	lookFlags.root = cmd.Flags().Bool("root", false, "when this option is enabled, the query runs with an empty call stack instead of no call stack")
	rootCmd.AddCommand(cmd)
}

func runLook(cmd *cobra.Command, args []string) error {
	auto, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	network, err := auto.Build()
	if err != nil {
		return err
	}

	s, err := resolveState(network, *lookFlags.state)
	if err != nil {
		return err
	}
	var stop *atn.State
	if *lookFlags.stop >= 0 {
		stop, err = resolveState(network, *lookFlags.stop)
		if err != nil {
			return err
		}
	}
	var frame *prediction.CallFrame
	if *lookFlags.root {
		frame = prediction.NewRootFrame()
	}

	set := prediction.NewAnalyzer(network).Lookahead(s, stop, frame)
	fmt.Fprintln(os.Stdout, renderSet(auto, set))

	return nil
}

func resolveState(network *atn.ATN, num int) (*atn.State, error) {
	if num < 0 || num >= network.StateCount() {
		return nil, fmt.Errorf("a state number is out of range; state: %v, state count: %v", num, network.StateCount())
	}
	return network.State(num), nil
}
