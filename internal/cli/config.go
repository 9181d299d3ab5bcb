package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexlife/pkg/config"
	errs "github.com/matzehuels/hexlife/pkg/errors"
)

// defaultConfigPath is where "config init" writes without an argument.
const defaultConfigPath = "hexlife.toml"

// configCommand groups the configuration subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or print configuration files",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var (
		formatStr string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			return writeDefaultConfig(path, formatStr, force)
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", "", "toml or yaml (default from file extension)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	var formatStr string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after merging --config over the defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return config.Encode(stdout, cfg, format)
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", string(config.FormatTOML), "toml or yaml")

	return cmd
}

// writeDefaultConfig writes the defaults to path. The format comes from
// formatStr when set, otherwise from the file extension.
func writeDefaultConfig(path, formatStr string, force bool) error {
	var (
		format config.Format
		err    error
	)
	if formatStr != "" {
		format, err = config.ParseFormat(formatStr)
	} else {
		format, err = config.FormatFromPath(path)
	}
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
		}
	}

	var buf bytes.Buffer
	if err := config.Encode(&buf, config.Default(), format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
	}
	printSuccess("Wrote %s", path)
	printNextStep("Open the window with it", "hexlife run --config "+path)
	return nil
}
