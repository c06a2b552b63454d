package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pearify/chalk/pkg/chalk"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/spf13/cobra"
)

var renderLog = logger.New("cli:render_command")

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Print the console format string and CSS for styled text",
		Long: `Print the console format string and CSS produced by a style expression.

The output is the argument pair a browser console expects: a format string
starting with %c, and the CSS that %c applies.

Examples:
  ` + constants.CLIName.String() + ` render -s bold.red hi              # %chi / font-weight:bold;color:#ff6b6b
  ` + constants.CLIName.String() + ` render -s 'hex(#123456)' a b       # fragments are joined with spaces
  ` + constants.CLIName.String() + ` render -s green --big Pearify     # banner sized text
  ` + constants.CLIName.String() + ` render -s cyan --json hi           # ["%chi","color:#67e8f9"]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, _ := cmd.Flags().GetString("style")
			big, _ := cmd.Flags().GetBool("big")
			jsonFlag, _ := cmd.Flags().GetBool("json")
			return RunRender(cmd.OutOrStdout(), expr, args, big, jsonFlag)
		},
	}

	addStyleFlag(cmd)
	addJSONFlag(cmd)
	cmd.Flags().Bool("big", false, "Render as big banner text")

	return cmd
}

// RunRender renders texts with the chain described by expr and writes the
// format string and CSS to w.
func RunRender(w io.Writer, expr string, texts []string, big, jsonOutput bool) error {
	renderLog.Printf("Rendering: expr=%q, fragments=%d, big=%t", expr, len(texts), big)

	r, err := renderExpr(expr, texts, big)
	if err != nil {
		return err
	}
	return writeRendered(w, r, jsonOutput)
}

func renderExpr(expr string, texts []string, big bool) (chalk.Rendered, error) {
	chain, err := chalk.Parse(expr)
	if err != nil {
		return chalk.Rendered{}, err
	}
	if big {
		return chain.BigApply(texts...), nil
	}
	return chain.Apply(texts...), nil
}

func writeRendered(w io.Writer, r chalk.Rendered, jsonOutput bool) error {
	if jsonOutput {
		out, err := json.Marshal([]string{r.Format, r.CSS})
		if err != nil {
			return fmt.Errorf("failed to marshal rendered output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", r.Format, r.CSS)
	return err
}

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Show styled text in the terminal",
		Long: `Render styled text and print it through the terminal console sink,
which maps the CSS onto ANSI colors and attributes.

Examples:
  ` + constants.CLIName.String() + ` preview -s bold.bgBlue.white deploy
  ` + constants.CLIName.String() + ` preview -s magenta --big Pearify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadContext(cmd)
			if err != nil {
				return err
			}
			expr, _ := cmd.Flags().GetString("style")
			big, _ := cmd.Flags().GetBool("big")
			return RunPreview(rc.sink, expr, args, big)
		},
	}

	addStyleFlag(cmd)
	cmd.Flags().Bool("big", false, "Render as big banner text")

	return cmd
}

// RunPreview renders texts and emits them through sink.
func RunPreview(sink console.Sink, expr string, texts []string, big bool) error {
	r, err := renderExpr(expr, texts, big)
	if err != nil {
		return err
	}
	sink.Emit(console.LevelLog, r.Format, r.CSS)
	return nil
}
