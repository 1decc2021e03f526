package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/nihei9/altana/interval"
	"github.com/nihei9/altana/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print an automaton file in a readable format",
		Example: `  altana show automaton.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	auto, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	err = writeAutomaton(os.Stdout, auto)
	if err != nil {
		return err
	}

	return nil
}

const automatonTemplate = `# {{ .Name }}

max token type: {{ .MaxTokenType }}
{{ range $i, $s := .States }}
## State {{ $i }} ({{ ruleName $s.Rule }}{{ if $s.RuleStop }}, stop{{ end }})

{{ range $s.Transitions -}}
{{ printTransition . }}
{{ end -}}
{{ end }}`

func writeAutomaton(w io.Writer, auto *spec.Automaton) error {
	printTransition := func(t *spec.Transition) string {
		switch t.Kind {
		case "rule":
			return fmt.Sprintf("call %v -> %v, resume at %v", auto.RuleName(t.Rule), t.Target, t.Follow)
		case "predicate":
			return fmt.Sprintf("{%v>=prec}? -> %v", t.Precedence, t.Target)
		case "wildcard":
			return fmt.Sprintf("any token -> %v", t.Target)
		case "set", "not_set":
			label := interval.NewSet()
			for _, r := range t.Label {
				label.AddRange(r.Lo, r.Hi)
			}
			names := make([]string, 0, label.Len())
			for _, v := range label.Values() {
				names = append(names, auto.TerminalName(v))
			}
			if t.Kind == "not_set" {
				return fmt.Sprintf("not [%v] -> %v", strings.Join(names, " "), t.Target)
			}
			return fmt.Sprintf("[%v] -> %v", strings.Join(names, " "), t.Target)
		default:
			return fmt.Sprintf("%v -> %v", t.Kind, t.Target)
		}
	}

	fns := template.FuncMap{
		"ruleName":        auto.RuleName,
		"printTransition": printTransition,
	}

	tmpl, err := template.New("automaton").Funcs(fns).Parse(automatonTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, auto)
}
