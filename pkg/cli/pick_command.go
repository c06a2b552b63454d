package cli

import (
	"fmt"
	"strings"

	"github.com/pearify/chalk/pkg/chalk"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/stringutil"
	"github.com/spf13/cobra"
)

// NewPickCommand creates the pick command
func NewPickCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [text...]",
		Short: "Choose shortcuts interactively and preview the result",
		Long: `Select colors, backgrounds and modifiers from a list. The selection is
applied in list order, previewed, and printed as a style expression that
can be passed to -s.

Examples:
  ` + constants.CLIName.String() + ` pick Pearify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadContext(cmd)
			if err != nil {
				return err
			}
			selected, err := console.PromptMultiSelect(
				"Pick styles",
				"Space to toggle, enter to confirm",
				pickOptions(),
				0,
			)
			if err != nil {
				return err
			}
			text := "Pearify"
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}
			return RunPick(rc, selected, text)
		},
	}

	return cmd
}

func pickOptions() []console.SelectOption {
	shortcuts := chalk.Shortcuts()
	options := make([]console.SelectOption, 0, len(shortcuts))
	for _, s := range shortcuts {
		label := s.Name
		if decl := s.Declaration.String(); decl != "" {
			label += "  " + stringutil.Truncate(decl, 40)
		}
		options = append(options, console.SelectOption{Label: label, Value: s.Name})
	}
	return options
}

// RunPick builds a chain from the selected shortcut names, previews text with
// it and prints the matching expression.
func RunPick(rc *runContext, selected []string, text string) error {
	expr := strings.Join(selected, ".")
	if err := RunPreview(rc.sink, expr, []string{text}, false); err != nil {
		return err
	}
	if expr == "" {
		expr = `""`
	}
	_, err := fmt.Fprintln(rc.out, console.FormatInfoMessage("Expression: "+console.FormatExpression(expr)))
	return err
}
