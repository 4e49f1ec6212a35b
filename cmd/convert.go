package cmd

import (
	"fmt"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/testcase"
	"github.com/spf13/cobra"
)

var (
	convertOutput   string
	convertUsername string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert canonical BDD text into structured import records",
	Long: `Convert parses canonical (or near-canonical) test-case text and emits
structured records — name, description, prerequisite, nature, type, and
action/expected step pairs — as YAML for test-management import.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := GetLogger().WithComponent("convert")

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		cfg, err := loadGenConfig(cmd)
		if err != nil {
			return err
		}

		username := convertUsername
		if username == "" {
			username = cfg.Username
		}

		doc := &testcase.Document{
			Username:  username,
			TestCases: testcase.Parse(text),
		}

		log.Info("parsed test cases", "count", len(doc.TestCases))

		if convertOutput != "" {
			if err := testcase.WriteFile(convertOutput, doc); err != nil {
				log.Error("Failed to write output", "path", convertOutput, "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", convertOutput)
			return nil
		}

		data, err := testcase.EncodeYAML(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutput, "out", "o", "", "output YAML file (stdout when omitted)")
	convertCmd.Flags().StringVar(&convertUsername, "username", "", "username recorded in the import document")
}
