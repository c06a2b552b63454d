package cli

import (
	"fmt"
	"strings"

	"github.com/pearify/chalk/pkg/chalk"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/spf13/cobra"
)

var logCommandLog = logger.New("cli:log_command")

// NewLogCommand creates the log command
func NewLogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [message...]",
		Short: "Print a message with the application and logger badges",
		Long: `Print a message through a named logger. The line starts with the
application badge and a badge carrying the logger name in the logger color.

Logger colors may be set per name in the config file under 'loggers'.

Examples:
  ` + constants.CLIName.String() + ` log --name net connected
  ` + constants.CLIName.String() + ` log --name db --color '#ff75c3' --level warn slow query
  ` + constants.CLIName.String() + ` log --name net --level error --fmt '%cfailed' 'color:#ff6b6b'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadContext(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			color, _ := cmd.Flags().GetString("color")
			levelName, _ := cmd.Flags().GetString("level")
			customFmt, _ := cmd.Flags().GetString("fmt")
			return RunLog(rc, name, color, levelName, customFmt, args)
		},
	}

	cmd.Flags().StringP("name", "n", "app", "Logger name")
	cmd.Flags().StringP("color", "c", "", "Logger badge color (defaults to the config, then white)")
	cmd.Flags().StringP("level", "l", "log", "Console level: log, info, warn, error or debug")
	cmd.Flags().String("fmt", "", "Extra format appended after the badges (error level only)")

	return cmd
}

// RunLog prints messages through a configured logger.
func RunLog(rc *runContext, name, color, levelName, customFmt string, messages []string) error {
	level, err := console.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if customFmt != "" && level != console.LevelError {
		return fmt.Errorf("--fmt is only supported with --level error")
	}

	logCommandLog.Printf("Logging: name=%s, level=%s, messages=%d", name, level, len(messages))

	l := rc.cfg.NewLogger(name, color, rc.sink)
	args := make([]any, len(messages))
	for i, m := range messages {
		args[i] = m
	}

	switch level {
	case console.LevelInfo:
		l.Info(args...)
	case console.LevelWarn:
		l.Warn(args...)
	case console.LevelError:
		if customFmt != "" {
			l.ErrorCustomFmt(customFmt, args...)
		} else {
			l.Error(args...)
		}
	case console.LevelDebug:
		l.Debug(args...)
	default:
		l.Log(args...)
	}
	return nil
}

// NewBannerCommand creates the banner command
func NewBannerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banner [text...]",
		Short: "Print big banner text",
		Long: `Print text with the big banner style: 50px bold font, black stroke and,
unless disabled, a hard text shadow.

Examples:
  ` + constants.CLIName.String() + ` banner Pearify
  ` + constants.CLIName.String() + ` banner --color '#ff75c3' --no-shadow Ready`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadContext(cmd)
			if err != nil {
				return err
			}
			color, _ := cmd.Flags().GetString("color")
			noShadow, _ := cmd.Flags().GetBool("no-shadow")
			return RunBanner(rc, joinOr(args, rc.cfg.Badge.Label), color, !noShadow)
		},
	}

	cmd.Flags().StringP("color", "c", "", "Text color (defaults to the config big-text color)")
	cmd.Flags().Bool("no-shadow", false, "Disable the text shadow")

	return cmd
}

// RunBanner prints text as big banner text. The config decides color and
// shadow unless overridden.
func RunBanner(rc *runContext, text, color string, shadow bool) error {
	if color == "" {
		color = rc.cfg.BigText.Color
	}
	chalk.BigText(rc.sink, text, color, shadow && rc.cfg.Shadow())
	return nil
}

// PrintBanner prints the configured badge label as banner text. It backs the
// global --banner flag.
func PrintBanner(cmd *cobra.Command) error {
	rc, err := loadContext(cmd)
	if err != nil {
		return err
	}
	return RunBanner(rc, rc.cfg.Badge.Label, "", true)
}

func joinOr(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}
	return strings.Join(args, " ")
}
