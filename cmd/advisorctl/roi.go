package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"advisorpilot/internal/roi"
)

func newROICmd(opts *rootOptions) *cobra.Command {
	var (
		in        roi.Input
		employees int
	)
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Estimate savings and automation maturity from weekly hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := in.WeeklyHours
			if h.Manual < 0 || h.Manual > 30 || h.DataEntry < 0 || h.DataEntry > 40 || h.Reporting < 0 || h.Reporting > 20 {
				return fmt.Errorf("hours must be within manual 0-30, data-entry 0-40, reporting 0-20")
			}
			if cmd.Flags().Changed("employees") {
				if employees < 0 {
					return fmt.Errorf("--employees must be non-negative")
				}
				in.EmployeeCount = &employees
			}
			res := roi.Score(in)
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, res)
			}
			tw := newTable(out, "ROI estimate", table.Row{"Metric", "Value"})
			tw.AppendRows([]table.Row{
				{"Estimated annual savings", money(res.EstimatedAnnualSavings)},
				{"Automation maturity", fmt.Sprintf("%d/100", res.MaturityScore)},
				{"Benchmark", res.Benchmark},
				{"Hourly rate", fmt.Sprintf("%s (%s)", money(res.HourlyRate), res.RateTier)},
				{"Efficiency gain", fmt.Sprintf("%.0f%%", res.EfficiencyGain*100)},
				{"Annual hours", res.AnnualHours},
				{"Hours saved", res.HoursSaved},
			})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&in.WeeklyHours.Manual, "manual", 0, "Weekly hours of manual work (0-30)")
	cmd.Flags().IntVar(&in.WeeklyHours.DataEntry, "data-entry", 0, "Weekly hours of data entry (0-40)")
	cmd.Flags().IntVar(&in.WeeklyHours.Reporting, "reporting", 0, "Weekly hours of reporting (0-20)")
	cmd.Flags().IntVar(&employees, "employees", 0, "Employee count")
	cmd.Flags().IntVar(&in.SelectedSoftwareCount, "software-count", 0, "Number of tools in the stack")
	return cmd
}
