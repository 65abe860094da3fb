package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brjennin/Fleet/pkg/flow"
)

var stepsCmd = &cobra.Command{
	Use:   "steps <flow.yaml>",
	Short: "Describe the steps of a flow file",
	Long:  `Parse a flow file and print each step in execution order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, args []string) error {
	f, err := flow.Load(args[0])
	if err != nil {
		return err
	}
	name := f.Config.Name
	if name == "" {
		name = args[0]
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d steps)\n", name, len(f.Steps))
	for i, step := range f.Steps {
		fmt.Fprintf(cmd.OutOrStdout(), "  %2d. %s\n", i+1, step.Describe())
	}
	return nil
}
