package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newIndustriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "industries",
		Short: "List catalog industries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			industries := store.Industries()
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, map[string]any{"industries": industries})
			}
			tw := newTable(out, "Industries", table.Row{"#", "Industry", "Software", "Pain points"})
			for i, name := range industries {
				tw.AppendRow(table.Row{i + 1, name, len(store.SoftwareForIndustry(name)), len(store.FrictionsForIndustry(name))})
			}
			tw.SetColumnConfigs(rightAligned(1, 3, 4))
			tw.Render()
			return nil
		},
	}
}

func newSoftwareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "software <industry>",
		Short: "List an industry's software with integration counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			industry := args[0]
			software := store.SoftwareWithIntegrationCounts(industry)
			if len(software) == 0 {
				return fmt.Errorf("industry %q: %w", industry, errNotFound)
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, map[string]any{"industry": industry, "software": software})
			}
			tw := newTable(out, industry, table.Row{"Software", "Functions", "Integrations"})
			for _, sw := range software {
				tw.AppendRow(table.Row{sw.Name, joinOrDash(sw.MainFunctions), sw.IntegrationCount})
			}
			tw.SetColumnConfigs(rightAligned(3))
			tw.Render()

			if frictions := store.FrictionsForIndustry(industry); len(frictions) > 0 {
				ft := newTable(out, "Common pain points", table.Row{"Pain point"})
				for _, f := range frictions {
					ft.AppendRow(table.Row{f})
				}
				ft.Render()
			}
			return nil
		},
	}
}
