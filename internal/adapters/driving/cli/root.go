// Package cli implements the command line interface for aidfinder.
// Commands talk to the core through the driving ports; wiring of the
// concrete adapters happens once in initServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/urban-refuge/aidfinder/internal/core/ports/driving"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// version is set by Execute from the build entrypoint.
var version = "dev"

var verbose bool

// Services the commands depend on. Populated by initServices at startup,
// or swapped for mocks in tests.
var (
	aggregateService  driving.AggregateService
	submissionService driving.SubmissionService
)

var rootCmd = &cobra.Command{
	Use:   "aidfinder",
	Short: "Find aid services for refugees and immigrants",
	Long: `aidfinder aggregates aid services from a vetted spreadsheet feed,
community submissions, and Google Places, then filters them by category
and distance from a location.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
}

// Execute wires the services and runs the root command.
func Execute(ver string) error {
	version = ver

	if aggregateService == nil || submissionService == nil {
		if err := initServices(); err != nil {
			return err
		}
	}

	return rootCmd.Execute()
}
