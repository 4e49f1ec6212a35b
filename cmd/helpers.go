package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/config"
	"github.com/spf13/cobra"
)

func loadGenConfig(cmd *cobra.Command) (config.GenConfig, error) {
	cfg, loaded, err := config.LoadGenConfig(config.DefaultGenConfigPath)
	if err != nil {
		return config.GenConfig{}, err
	}
	if !loaded {
		fmt.Fprintf(cmd.ErrOrStderr(), "config not found, using defaults at %s\n", config.DefaultGenConfigPath)
	}
	return cfg, nil
}

// readInput returns the contents of the file argument, or stdin when no
// argument was given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
