package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nihei9/altana/interval"
	"github.com/nihei9/altana/spec"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "altana",
	Short: "Answer \"which terminals can appear next?\" over a compiled automaton",
	Long: `altana provides two features:
- Prints an automaton file in a readable format.
- Computes context-sensitive lookahead sets for individual states.
  This feature is primarily aimed at debugging a generated automaton.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func readAutomaton(path string) (*spec.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the automaton file %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	auto := &spec.Automaton{}
	err = json.Unmarshal(d, auto)
	if err != nil {
		return nil, err
	}

	return auto, nil
}

func renderSet(auto *spec.Automaton, set *interval.Set) string {
	if set.Len() == 0 {
		return "<none>"
	}

	names := make([]string, 0, set.Len())
	for _, v := range set.Values() {
		names = append(names, auto.TerminalName(v))
	}
	return strings.Join(names, ", ")
}
