package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

// footprintOutput is the JSON shape of the footprint command.
type footprintOutput struct {
	From        string                      `json:"from,omitempty"`
	To          string                      `json:"to,omitempty"`
	Activities  int                         `json:"activities"`
	Breakdown   greenops.FootprintBreakdown `json:"breakdown"`
	Diagnostics []greenops.Diagnostic       `json:"diagnostics,omitempty"`
}

// NewFootprintCmd creates the footprint command.
func NewFootprintCmd() *cobra.Command {
	var file, from, to string

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Calculate the carbon footprint of activities",
		Long: `Aggregates activities into a per-category footprint in kg CO2e.

Activities come from --file (a YAML or JSON list of {category, type, value};
"-" reads YAML from stdin) or from the journal between --from and --to, which
default to today. Unknown or malformed activities count as zero; with --strict
they are reported and the command fails.`,
		Example: `  ecomood footprint
  ecomood footprint --from 2024-08-20 --to 2024-08-27
  ecomood footprint --file activities.yaml -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFootprint(cmd, file, from, to)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read activities from a YAML or JSON file")
	cmd.Flags().StringVar(&from, "from", "", "first journal day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "last journal day (YYYY-MM-DD, default today)")

	return cmd
}

func runFootprint(cmd *cobra.Command, file, from, to string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	out := footprintOutput{}
	var records []greenops.ActivityRecord
	if file != "" {
		records, err = readActivities(cmd.InOrStdin(), file)
		if err != nil {
			return err
		}
	} else {
		fromDay, toDay, rangeErr := journalRange(cmd, from, to)
		if rangeErr != nil {
			return rangeErr
		}
		store, openErr := openJournal(cmd)
		if openErr != nil {
			return openErr
		}
		entries, fetchErr := store.Activities(cmd.Context(), fromDay, toDay)
		if fetchErr != nil {
			return fmt.Errorf("reading journal: %w", fetchErr)
		}
		records = journal.Records(entries)
		out.From = fromDay.Format(journal.DateLayout)
		out.To = toDay.Format(journal.DateLayout)
	}

	strict := strictMode(cmd)
	out.Activities = len(records)
	if strict {
		out.Breakdown, out.Diagnostics = greenops.AggregateWithDiagnostics(records)
	} else {
		out.Breakdown = greenops.Aggregate(records)
	}

	logger.Debug().Ctx(cmd.Context()).
		Int("activities", len(records)).
		Float64("total_kg", out.Breakdown.Total).
		Msg("footprint calculated")

	w := cmd.OutOrStdout()
	if format == config.FormatJSON {
		if err = writeJSON(w, out); err != nil {
			return err
		}
	} else {
		if out.From != "" {
			_, _ = fmt.Fprintf(w, "Footprint %s .. %s (%d activities)\n\n", out.From, out.To, out.Activities)
		}
		if err = renderBreakdown(w, out.Breakdown); err != nil {
			return err
		}
		renderEquivalency(w, out.Breakdown.Total)
	}

	return failOnDiagnostics(cmd, out.Diagnostics)
}

// journalRange parses --from/--to, defaulting both to today.
func journalRange(cmd *cobra.Command, from, to string) (time.Time, time.Time, error) {
	today, err := now(cmd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	parse := func(name, value string) (time.Time, error) {
		if value == "" {
			return today, nil
		}
		t, parseErr := time.ParseInLocation(journal.DateLayout, value, time.Local)
		if parseErr != nil {
			return time.Time{}, fmt.Errorf("invalid --%s %q: %w", name, value, journal.ErrInvalidDate)
		}
		return t, nil
	}

	fromDay, err := parse("from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toDay, err := parse("to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if toDay.Before(fromDay) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s",
			toDay.Format(journal.DateLayout), fromDay.Format(journal.DateLayout))
	}
	return fromDay, toDay, nil
}

// readActivities decodes a list of activity records. Files ending in .json
// are read as JSON, anything else (including "-" for stdin) as YAML.
func readActivities(stdin io.Reader, path string) ([]greenops.ActivityRecord, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading activities: %w", err)
	}

	var records []greenops.ActivityRecord
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &records)
	} else {
		err = yaml.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing activities in %s: %w", path, err)
	}
	return records, nil
}
