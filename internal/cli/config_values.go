package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
)

// configEntry is one key of the configuration in list output.
type configEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Sets one dotted configuration key and saves the file.

The resulting configuration is validated before it is written, so an invalid
value leaves the file untouched. Run "ecomood config list" to see every key.`,
		Example: `  # Set a daily budget of 12 kg CO2e
  ecomood config set budget.daily_kg 12

  # Default to JSON output
  ecomood config set output.default_format json`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFileConfig()
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("invalid value for %s: %w", args[0], err)
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			logger.Debug().Ctx(cmd.Context()).Str("key", args[0]).Str("value", args[1]).Msg("configuration updated")
			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print a configuration value",
		Example: `  ecomood config get dashboard.window`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Long:  "Lists the effective configuration, including environment overrides.",
		Example: `  ecomood config list
  ecomood config list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			cfg := config.GetGlobalConfig()
			entries := make([]configEntry, 0, len(config.Keys()))
			for _, key := range config.Keys() {
				value, getErr := cfg.Get(key)
				if getErr != nil {
					return getErr
				}
				entries = append(entries, configEntry{Key: key, Value: value})
			}

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(tw, "KEY\tVALUE")
			for _, e := range entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", e.Key, e.Value)
			}
			return tw.Flush()
		},
	}
}
