package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to $ECOMOOD_HOME/config.yaml (default ~/.ecomood/config.yaml)
together with a .gitignore that keeps the journal and logs out of version control.`,
		Example: `  # Create the configuration
  ecomood config init

  # Create configuration, overwriting existing
  ecomood config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	cfg := config.Default()
	path := cfg.Path()

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	if created {
		cmd.Printf("Created .gitignore to keep the journal and logs private\n")
	}

	return nil
}

// loadFileConfig returns the configuration stored on disk, without environment
// overrides, so that saving it back never persists a transient variable.
func loadFileConfig() (*config.Config, error) {
	cfg := config.Default()
	path := cfg.Path()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access config path %s: %w", path, err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return loaded, nil
}
