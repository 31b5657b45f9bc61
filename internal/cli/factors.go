package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
)

// NewFactorsCmd creates the factors command.
func NewFactorsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List emission factors",
		Example: `  ecomood factors
  ecomood factors --category diet`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			entries := greenops.Entries()
			if category != "" {
				c := greenops.Category(category)
				if !c.IsKnown() {
					return fmt.Errorf("%w: %q", greenops.ErrUnknownCategory, category)
				}
				filtered := entries[:0]
				for _, e := range entries {
					if e.Category == c {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return renderFactors(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list one category")

	return cmd
}
