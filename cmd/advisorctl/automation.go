package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"advisorpilot/internal/automation"
)

func newAutomationCmd(opts *rootOptions) *cobra.Command {
	var (
		software  []string
		size      string
		employees int
		seed      uint64
	)
	cmd := &cobra.Command{
		Use:   "automation",
		Short: "Detect automation opportunities in a software stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(software) == 0 {
				return fmt.Errorf("--software is required")
			}
			store, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			var jitter automation.Jitter
			if cmd.Flags().Changed("seed") {
				jitter = rand.New(rand.NewPCG(seed, seed))
			}
			var count *int
			if cmd.Flags().Changed("employees") {
				count = &employees
			}
			res := automation.NewDetector(store, jitter).Detect(software, size, count)

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, res)
			}
			tw := newTable(out, "Automation opportunities", table.Row{"Title", "Category", "Difficulty", "Setup", "Savings"})
			for _, opp := range res.Opportunities {
				tw.AppendRow(table.Row{opp.Title, opp.Category, opp.Difficulty, opp.SetupTime, money(opp.EstimatedSavings)})
			}
			tw.AppendFooter(table.Row{"", "", "", "Total", money(res.PotentialAnnualSavings)})
			tw.SetColumnConfigs(rightAligned(5))
			tw.Render()

			st := newTable(out, "", table.Row{"Summary", ""})
			st.AppendRows([]table.Row{
				{"Maturity score", fmt.Sprintf("%d/100", res.MaturityScore)},
				{"Detected platforms", joinOrDash(res.DetectedPlatforms)},
				{"Suggested platforms", joinOrDash(res.MissingPlatforms)},
			})
			st.Render()
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&software, "software", nil, "Selected software (repeat or comma-separate)")
	cmd.Flags().StringVar(&size, "size", "", "Company size bracket")
	cmd.Flags().IntVar(&employees, "employees", 0, "Employee count")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible savings estimates")
	return cmd
}
