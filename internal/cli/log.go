package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

// NewLogActivityCmd creates the log activity command.
func NewLogActivityCmd() *cobra.Command {
	var date, note string

	cmd := &cobra.Command{
		Use:   "activity <category> <type> <quantity>",
		Short: "Record an activity in the journal",
		Long: `Records one activity. The category is transport, diet or energy; the type
must be listed by "ecomood factors"; the quantity is in the type's unit.`,
		Example: `  ecomood log activity transport car 32
  ecomood log activity diet vegetarian 2 --date 2024-08-20
  ecomood log activity energy electricity 9.5 --note "washing day"`,
		Args: cobra.ExactArgs(3), //nolint:mnd // category, type, quantity.
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := entryDate(cmd, date)
			if err != nil {
				return err
			}
			store, err := openJournal(cmd)
			if err != nil {
				return err
			}

			entry, err := store.AddActivity(cmd.Context(), journal.ActivityEntry{
				Date: day,
				ActivityRecord: greenops.ActivityRecord{
					Category: greenops.Category(strings.ToLower(args[0])),
					Type:     strings.ToLower(args[1]),
					Value:    greenops.Text(args[2]),
				},
				Note: note,
			})
			if err != nil {
				return fmt.Errorf("recording activity: %w", err)
			}

			value, _ := entry.Value.Float64()
			kgCO2e := greenops.FootprintOf(entry.Category, entry.Type, value)
			return printSubmitted(cmd, entry, fmt.Sprintf("Recorded %s %s %s on %s (%s)",
				entry.Category, entry.Type, entry.Value, entry.Date, kg(kgCO2e)))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day of the activity (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")

	return cmd
}

// NewLogReflectionCmd creates the log reflection command.
func NewLogReflectionCmd() *cobra.Command {
	var (
		date      string
		sentiment string
		score     float64
	)

	cmd := &cobra.Command{
		Use:   "reflection <text>",
		Short: "Record how the day felt",
		Example: `  ecomood log reflection "Walked everywhere today" --sentiment positive --score 0.9
  ecomood log reflection "Stuck in traffic" --sentiment negative --score -0.6 --date 2024-08-22`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := entryDate(cmd, date)
			if err != nil {
				return err
			}
			mood, err := journal.ParseSentiment(sentiment)
			if err != nil {
				return err
			}
			store, err := openJournal(cmd)
			if err != nil {
				return err
			}

			r, err := store.AddReflection(cmd.Context(), journal.Reflection{
				Date:      day,
				Text:      strings.Join(args, " "),
				Sentiment: mood,
				Score:     score,
			})
			if err != nil {
				return fmt.Errorf("recording reflection: %w", err)
			}
			return printSubmitted(cmd, r, fmt.Sprintf("Recorded %s reflection (%+.1f) on %s", r.Sentiment, r.Score, r.Date))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day of the reflection (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&sentiment, "sentiment", "s", string(journal.SentimentNeutral),
		"positive, neutral or negative")
	cmd.Flags().Float64Var(&score, "score", 0, "sentiment score between -1 and 1")

	return cmd
}

// entryDate returns --date or today's date.
func entryDate(cmd *cobra.Command, date string) (string, error) {
	if date != "" {
		return date, nil
	}
	today, err := now(cmd)
	if err != nil {
		return "", err
	}
	return today.Format(journal.DateLayout), nil
}

func printSubmitted(cmd *cobra.Command, v any, message string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
