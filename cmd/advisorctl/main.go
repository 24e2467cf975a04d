package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"advisorpilot/internal/catalog"
	"advisorpilot/internal/shared/telemetry"
)

// Exit codes for structured error reporting.
const (
	ExitSuccess    = 0
	ExitInternal   = 1
	ExitInvalidArg = 2
	ExitNotFound   = 3
)

type rootOptions struct {
	industryData    string
	integrationData string
	jsonOutput      bool
	verbose         bool
}

func (o *rootOptions) loadCatalog() (*catalog.Store, error) {
	return catalog.LoadFiles(o.industryData, o.integrationData)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(classifyError(err))
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "advisorctl",
		Short: "Software stack advisor",
		Long: `advisorctl runs the deterministic stack analyses offline against the
software catalog: industry software lists, integration recommendations,
ROI estimates and automation opportunities. It also mints the admin
tokens the API requires for reading captured leads.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			telemetry.Set(telemetry.New(level, "console"))
		},
	}

	root.PersistentFlags().StringVar(&opts.industryData, "industry-data", "", "Path to industry catalog JSON (default: embedded)")
	root.PersistentFlags().StringVar(&opts.integrationData, "integration-data", "", "Path to integration catalog JSON (default: embedded)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of tables")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.AddCommand(newIndustriesCmd(opts))
	root.AddCommand(newSoftwareCmd(opts))
	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newROICmd(opts))
	root.AddCommand(newAutomationCmd(opts))
	root.AddCommand(newTokenCmd(opts))
	return root
}

var errNotFound = errors.New("not found")

func classifyError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, errNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ExitNotFound
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such file") {
		return ExitNotFound
	}
	if strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "must be") ||
		strings.Contains(msg, "unknown flag") {
		return ExitInvalidArg
	}
	return ExitInternal
}
