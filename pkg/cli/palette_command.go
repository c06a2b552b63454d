package cli

import (
	"fmt"
	"io"

	"github.com/pearify/chalk/pkg/chalk"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/styles"
	"github.com/pearify/chalk/pkg/tty"
	"github.com/spf13/cobra"
)

// NewPaletteCommand creates the palette command
func NewPaletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the named color, background and modifier shortcuts",
		Long: `List every shortcut usable in a style expression with the CSS it appends.

Examples:
  ` + constants.CLIName.String() + ` palette
  ` + constants.CLIName.String() + ` palette --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			swatches := tty.IsStdoutTerminal() && !tty.ColorDisabled()
			return RunPalette(cmd.OutOrStdout(), jsonFlag, swatches)
		},
	}

	addJSONFlag(cmd)
	return cmd
}

// paletteTable builds the shortcut table. With swatches, color names are
// painted with their own palette color.
func paletteTable(swatches bool) console.TableConfig {
	config := console.TableConfig{
		Title:   "Shortcuts",
		Headers: []string{"Name", "Kind", "Declaration"},
	}
	for _, s := range chalk.Shortcuts() {
		name := s.Name
		if swatches {
			if hex, ok := swatchHex(s); ok {
				name = styles.SwatchStyle(styles.Swatch{Name: s.Name, Hex: hex}).Render(" " + s.Name + " ")
			}
		}
		decl := s.Declaration.String()
		if decl == "" {
			decl = "(none)"
		}
		config.Rows = append(config.Rows, []string{name, string(s.Kind), decl})
	}
	return config
}

func swatchHex(s chalk.ShortcutInfo) (string, bool) {
	switch s.Kind {
	case chalk.KindColor:
		return styles.Hex(s.Name)
	case chalk.KindBackground:
		return s.Declaration.Lookup("backgroundColor")
	}
	return "", false
}

// RunPalette writes the shortcut table to w.
func RunPalette(w io.Writer, jsonOutput, swatches bool) error {
	if jsonOutput {
		out, err := console.RenderTableAsJSON(paletteTable(false))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	_, err := fmt.Fprint(w, console.RenderTable(paletteTable(swatches)))
	return err
}
