// Package cmd implements the fleet command-line interface.
//
// The CLI works on flow files only: it validates and describes the YAML
// interaction scripts that pkg/flow executes. Running a flow requires a
// live host toolkit, which only exists inside a test process.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brjennin/Fleet/pkg/flow"
)

// Version information set at build time.
var (
	Version   = "0.3.0-dev"
	BuildTime = "unknown"
)

var exitFunc = os.Exit
var versionFlag bool

var rootCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Validate and inspect Fleet interaction flows",
	Long: `Fleet drives a host toolkit's controls and screens from tests.
This CLI lints and describes the YAML flow scripts the flow runner
executes, without needing a running application.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "fleet version %s (built %s, schema %s)\n", Version, BuildTime, flow.Version)
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}
