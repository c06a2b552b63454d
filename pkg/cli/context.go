package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/pearify/chalk/pkg/config"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/spf13/cobra"
)

var contextLog = logger.New("cli:context")

// runContext carries what every command needs after the global flags are read.
type runContext struct {
	cfg     *config.File
	cfgPath string
	sink    console.Sink
	out     io.Writer
	verbose bool
}

// loadContext reads the persistent flags, loads the config file and builds
// the console sink for cmd.
func loadContext(cmd *cobra.Command) (*runContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	plain, _ := cmd.Flags().GetBool("plain")
	verbose, _ := cmd.Flags().GetBool("verbose")
	output, _ := cmd.Flags().GetString("output")

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, path, err := config.LoadOrDefault(configPath, wd)
	if err != nil {
		return nil, err
	}
	if output != "" {
		if err := config.ValidateOutput(output); err != nil {
			return nil, err
		}
		cfg.Output = output
	}
	if verbose && path != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), console.FormatVerboseMessage("Using config "+path))
	}

	out := cmd.OutOrStdout()
	contextLog.Printf("Context loaded: config=%q, output=%s, plain=%t", path, cfg.Output, plain)
	return &runContext{
		cfg:     cfg,
		cfgPath: path,
		sink:    newSink(out, cfg.Output, plain, verbose),
		out:     out,
		verbose: verbose,
	}, nil
}

// newSink builds a terminal sink on out honoring the output mode.
func newSink(out io.Writer, output string, plain, verbose bool) *console.TerminalSink {
	opts := []console.TerminalOption{console.WithDebug(verbose)}
	switch {
	case plain || output == config.OutputPlain:
		opts = append(opts, console.WithPlain(true))
	case output == config.OutputColor:
		opts = append(opts, console.WithColorProfile(termenv.TrueColor))
	}
	return console.NewTerminalSink(out, opts...)
}

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Output in JSON format")
}

func addStyleFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("style", "s", "", "Style expression, e.g. bold.red or hex(#123456).underline")
}
