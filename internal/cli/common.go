package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

// ErrIgnoredActivities is returned in strict mode when some activities
// contributed nothing to a footprint.
var ErrIgnoredActivities = errors.New("activities were ignored")

// now returns the --as-of day, or the current time.
func now(cmd *cobra.Command) (time.Time, error) {
	asOf, _ := cmd.Flags().GetString(flagAsOf)
	if asOf == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(journal.DateLayout, asOf, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: %w", flagAsOf, asOf, journal.ErrInvalidDate)
	}
	return t, nil
}

// openJournal returns the journal selected by --demo, --journal or configuration.
func openJournal(cmd *cobra.Command) (journal.Store, error) {
	if demo, _ := cmd.Flags().GetBool(flagDemo); demo {
		today, err := now(cmd)
		if err != nil {
			return nil, err
		}
		return journal.NewDemoStore(today), nil
	}

	path, _ := cmd.Flags().GetString(flagJournal)
	if path == "" {
		var err error
		path, err = config.GetGlobalConfig().JournalPath()
		if err != nil {
			return nil, fmt.Errorf("resolving journal path: %w", err)
		}
	}
	logger.Debug().Ctx(cmd.Context()).Str("journal", path).Msg("opening journal")
	return journal.NewFileStore(path)
}

// outputFormat returns the --output format or the configured default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString(flagOutput)
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	format = strings.ToLower(format)
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: got %q", config.ErrInvalidFormat, format)
	}
}

// strictMode reports whether --strict or dashboard.strict is set.
func strictMode(cmd *cobra.Command) bool {
	if cmd.Flags().Changed(flagStrict) {
		strict, _ := cmd.Flags().GetBool(flagStrict)
		return strict
	}
	return config.GetGlobalConfig().Dashboard.Strict
}

// failOnDiagnostics prints ignored activities to stderr and returns
// ErrIgnoredActivities when there were any.
func failOnDiagnostics(cmd *cobra.Command, diags []greenops.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	for _, d := range diags {
		cmd.PrintErrf("Warning: %v\n", d)
	}
	return fmt.Errorf("%w: %d activities contributed nothing", ErrIgnoredActivities, len(diags))
}
