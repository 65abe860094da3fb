package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brjennin/Fleet/pkg/flow"
)

var lintCmd = &cobra.Command{
	Use:   "lint <flow.yaml>...",
	Short: "Validate flow files",
	Long: `Parse flow files and report schema or version errors without
executing them. Exits non-zero when any file fails validation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	var failed int
	for _, path := range args {
		f, err := flow.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d steps)\n", path, len(f.Steps))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
