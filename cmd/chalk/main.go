package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pearify/chalk/pkg/cli"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by GoReleaser
var version = "dev"

// Global flags
var verboseFlag bool
var bannerFlag bool

var rootCmd = &cobra.Command{
	Use:     constants.CLIName.String(),
	Short:   "Build browser console %c styles and preview them in the terminal",
	Version: version,
	Long: `Build the format string and CSS that browser consoles use for %c styling,
and preview the result in the terminal.

Common Tasks:
  chalk render -s bold.red hi        # Print the format string and CSS
  chalk preview -s bgBlue.white ok   # Show styled text in the terminal
  chalk palette                      # List the available shortcuts
  chalk log --name net connected     # Print a Pearify logger line
  chalk batch styles.yaml --watch    # Render a YAML batch file on every save

For detailed help on any command, use:
  chalk [command] --help`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if bannerFlag {
			return cli.PrintBanner(cmd)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, version)))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output including debug-level console messages")
	rootCmd.PersistentFlags().BoolVar(&bannerFlag, "banner", false, "Print the badge label as banner text before running the command")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default: $"+constants.EnvConfig.String()+" or "+constants.DefaultConfigFileName+")")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable terminal colors and styling")
	rootCmd.PersistentFlags().String("output", "", "Override the config output mode: auto, color or plain")

	rootCmd.SilenceUsage = true
	// Errors are printed by main.
	rootCmd.SilenceErrors = true

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetVersionTemplate(constants.CLIName.String() + " version {{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: "style", Title: "Styling Commands:"},
		&cobra.Group{ID: "logging", Title: "Logging Commands:"},
		&cobra.Group{ID: "utilities", Title: "Utilities:"},
	)

	renderCmd := cli.NewRenderCommand()
	previewCmd := cli.NewPreviewCommand()
	paletteCmd := cli.NewPaletteCommand()
	pickCmd := cli.NewPickCommand()
	batchCmd := cli.NewBatchCommand()
	logCmd := cli.NewLogCommand()
	bannerCmd := cli.NewBannerCommand()
	configCmd := cli.NewConfigCommand()

	renderCmd.GroupID = "style"
	previewCmd.GroupID = "style"
	paletteCmd.GroupID = "style"
	pickCmd.GroupID = "style"
	batchCmd.GroupID = "style"

	logCmd.GroupID = "logging"
	bannerCmd.GroupID = "logging"

	configCmd.GroupID = "utilities"

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errMsg := err.Error()
		// Already formatted by a subcommand.
		if strings.HasPrefix(errMsg, "✗") {
			fmt.Fprintln(os.Stderr, errMsg)
		} else {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(errMsg))
		}
		os.Exit(1)
	}
}
