package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/pearify/chalk/pkg/config"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file and its schema",
		Long: `Inspect the ` + constants.DefaultConfigFileName + ` configuration.

The file is looked up from --config, then $` + constants.EnvConfig.String() + `, then ` + constants.DefaultConfigFileName + `
in the working directory.`,
	}

	cmd.AddCommand(newConfigSchemaCommand(), newConfigShowCommand())
	return cmd
}

func newConfigSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema used to validate the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generated, _ := cmd.Flags().GetBool("generated")
			return RunConfigSchema(cmd.OutOrStdout(), generated)
		},
	}
	cmd.Flags().Bool("generated", false, "Print the schema derived from the Go types instead of the embedded one")
	return cmd
}

// RunConfigSchema writes the embedded or the generated config schema.
func RunConfigSchema(w io.Writer, generated bool) error {
	if !generated {
		_, err := fmt.Fprint(w, config.EmbeddedSchema())
		return err
	}
	out, err := config.GeneratedSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with defaults applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadContext(cmd)
			if err != nil {
				return err
			}
			return RunConfigShow(rc)
		},
	}
}

// RunConfigShow writes the loaded configuration as YAML.
func RunConfigShow(rc *runContext) error {
	out, err := yaml.Marshal(rc.cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if rc.cfgPath == "" {
		fmt.Fprintln(rc.out, console.FormatInfoMessage("No config file found, showing defaults"))
	} else if rc.verbose {
		fmt.Fprintln(rc.out, console.FormatVerboseMessage("Loaded from "+rc.cfgPath))
	}
	_, err = fmt.Fprint(rc.out, string(out))
	return err
}
