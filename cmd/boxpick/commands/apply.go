package commands

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"boxpick/internal/domain"
	"boxpick/internal/selection"
)

type applyResult struct {
	Policy    domain.Policy         `toml:"policy"`
	Ignored   []string              `toml:"ignored,omitempty"`
	Selection domain.SelectionState `toml:"selection"`
}

func applyCmd(opts *rootOptions) *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "apply [identifiers...]",
		Short: "Apply selections without the UI and print the result",
		Long: "Apply each identifier in order, as if the box with that label had been\n" +
			"clicked, then print the state of every box. Identifiers other than\n" +
			"A, B and C are ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := selection.NewService(opts.cfg.Policy, nil)

			result := applyResult{Policy: opts.cfg.Policy}
			for _, id := range args {
				if !svc.BoxSelected(id) {
					result.Ignored = append(result.Ignored, id)
				}
			}
			result.Selection = svc.State()

			if asTOML {
				return writeTOML(cmd.OutOrStdout(), result)
			}
			return writeText(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the result as TOML")
	return cmd
}

func writeText(w io.Writer, result applyResult) error {
	for _, b := range domain.AllBoxes() {
		mark := "-"
		if result.Selection.Get(b) {
			mark = "selected"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", b, mark); err != nil {
			return err
		}
	}
	return nil
}

func writeTOML(w io.Writer, result applyResult) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
