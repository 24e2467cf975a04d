package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"advisorpilot/internal/analyses"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		industry string
		size     string
		software []string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Recommend integrations for a software stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(software) == 0 {
				return fmt.Errorf("--software is required")
			}
			store, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			svc := analyses.NewService(store, nil, nil)
			res, err := svc.Analyze(context.Background(), analyses.Request{
				Industry:         industry,
				CompanySize:      size,
				SelectedSoftware: software,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, res)
			}

			tw := newTable(out, "Recommendations", table.Row{"Priority", "Category", "Title", "Software", "Savings"})
			for _, rec := range res.Recommendations {
				tw.AppendRow(table.Row{rec.Priority, rec.Category, rec.Title, joinOrDash(rec.SoftwareInvolved), money(rec.EstimatedSavings)})
			}
			tw.AppendFooter(table.Row{"", "", "", "Total", money(res.TotalSavings)})
			tw.SetColumnConfigs(rightAligned(5))
			tw.Render()

			opps := res.IntegrationOpportunities
			ot := newTable(out, "Integration opportunities", table.Row{"Kind", "Count"})
			ot.AppendRows([]table.Row{
				{"Existing", len(opps.Existing)},
				{"Missing", len(opps.Missing)},
				{"Quick wins", len(opps.QuickWins)},
			})
			ot.SetColumnConfigs(rightAligned(2))
			ot.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&industry, "industry", "", "Industry name")
	cmd.Flags().StringVar(&size, "size", "", "Company size bracket (1-50, 51-200, 200+)")
	cmd.Flags().StringSliceVar(&software, "software", nil, "Selected software (repeat or comma-separate)")
	return cmd
}
