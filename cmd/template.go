package cmd

import (
	"fmt"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/agent"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the requirement format guides",
	Long: `Template prints the user-facing format guides the agents expect
requirements to follow, for both the functional and the visual category.`,
	Run: func(cmd *cobra.Command, args []string) {
		m := agent.NewManager(
			agent.NewFunctional(nil, GetLogger()),
			agent.NewVisual(nil, GetLogger()),
			GetLogger(),
		)
		fmt.Fprintln(cmd.OutOrStdout(), m.FormatTemplate())
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
