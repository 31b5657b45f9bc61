package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecomood/ecomood/internal/config"
	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

// recommendOutput is the JSON shape of the recommend command.
type recommendOutput struct {
	Breakdown            greenops.FootprintBreakdown `json:"breakdown"`
	Recommendations      []greenops.Recommendation   `json:"recommendations"`
	TotalPotentialSaving float64                     `json:"totalPotentialSaving"`
}

// NewRecommendCmd creates the recommend command.
func NewRecommendCmd() *cobra.Command {
	var (
		window                  string
		transport, diet, energy float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest where to cut your footprint",
		Long: `Derives recommendations from a footprint breakdown.

Pass --transport, --diet and --energy to evaluate a breakdown directly, or
omit them to use the journal's footprint over --window.`,
		Example: `  ecomood recommend --transport 6 --diet 3 --energy 1
  ecomood recommend --window 7d -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b greenops.FootprintBreakdown
			if cmd.Flags().Changed("transport") || cmd.Flags().Changed("diet") || cmd.Flags().Changed("energy") {
				b = greenops.FootprintBreakdown{
					Transport: transport,
					Diet:      diet,
					Energy:    energy,
					Total:     transport + diet + energy,
				}
			} else {
				var err error
				if b, err = windowBreakdown(cmd, window); err != nil {
					return err
				}
			}
			return runRecommend(cmd, b)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", "", "journal window: 7d, 30d or 90d (default from config)")
	cmd.Flags().Float64Var(&transport, "transport", 0, "transport subtotal in kg CO2e")
	cmd.Flags().Float64Var(&diet, "diet", 0, "diet subtotal in kg CO2e")
	cmd.Flags().Float64Var(&energy, "energy", 0, "energy subtotal in kg CO2e")

	return cmd
}

func runRecommend(cmd *cobra.Command, b greenops.FootprintBreakdown) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	recs := greenops.Recommend(b)
	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), recommendOutput{
			Breakdown:            b,
			Recommendations:      recs,
			TotalPotentialSaving: greenops.TotalPotentialSaving(recs),
		})
	}
	return renderRecommendations(cmd.OutOrStdout(), recs)
}

// windowBreakdown aggregates the journal over the window ending today.
func windowBreakdown(cmd *cobra.Command, window string) (greenops.FootprintBreakdown, error) {
	w, err := resolveWindow(window)
	if err != nil {
		return greenops.FootprintBreakdown{}, err
	}
	today, err := now(cmd)
	if err != nil {
		return greenops.FootprintBreakdown{}, err
	}
	store, err := openJournal(cmd)
	if err != nil {
		return greenops.FootprintBreakdown{}, err
	}
	from, to := w.Range(today)
	entries, err := store.Activities(cmd.Context(), from, to)
	if err != nil {
		return greenops.FootprintBreakdown{}, fmt.Errorf("reading journal: %w", err)
	}
	return greenops.Aggregate(journal.Records(entries)), nil
}
