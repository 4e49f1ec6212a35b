package cmd

import (
	"fmt"
	"os"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/bdd"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/request"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/sanitize"
	"github.com/spf13/cobra"
)

var (
	enforceMaxCases int
	enforceCategory string
	enforceOutput   string
	enforceRawOnly  bool
)

var enforceCmd = &cobra.Command{
	Use:   "enforce [file]",
	Short: "Enforce strict Given/When/Then shape on generated test-case text",
	Long: `Enforce reads raw generated test-case text from a file (or stdin) and
rewrites it into the canonical numbered BDD form: one case per numbered
block, at least one Given, When, and Then per case, fresh 3-digit ids.

Missing roles are synthesized with category-aware defaults; chained keywords
("When Given ...") are collapsed; titles that are themselves steps are
merged into the step list and replaced with a derived title.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := GetLogger().WithComponent("enforce")

		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		cfg, err := loadGenConfig(cmd)
		if err != nil {
			return err
		}

		maxCases := enforceMaxCases
		if maxCases <= 0 {
			maxCases = cfg.MaxCases
		}
		// an explicit count inside the requirements text wins
		if n := request.CaseCount(raw); n > 0 && enforceMaxCases <= 0 {
			maxCases = n
		}

		category := enforceCategory
		if category == "" {
			category = cfg.Category
		}

		text := raw
		if !enforceRawOnly {
			text = sanitize.Finalize(raw)
		}

		result := bdd.Enforce(text, bdd.Options{
			MaxCases: maxCases,
			Category: bdd.NormalizeCategory(category),
		})

		log.Info("enforcement complete",
			"category", category,
			"max_cases", maxCases,
			"bytes_in", len(raw),
			"bytes_out", len(result))

		if enforceOutput != "" {
			if err := os.WriteFile(enforceOutput, []byte(result+"\n"), 0644); err != nil {
				log.Error("Failed to write output", "path", enforceOutput, "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", enforceOutput)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enforceCmd)

	enforceCmd.Flags().IntVar(&enforceMaxCases, "max-cases", 0, "maximum number of cases (1-50, 0 uses the configured default)")
	enforceCmd.Flags().StringVar(&enforceCategory, "category", "", "fallback category (functional or visual)")
	enforceCmd.Flags().StringVarP(&enforceOutput, "output", "o", "", "write the canonical text to a file instead of stdout")
	enforceCmd.Flags().BoolVar(&enforceRawOnly, "skip-sanitize", false, "skip the markdown/leakage scrub before enforcement")
}
