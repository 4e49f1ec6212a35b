package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/config"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	debug     bool
	logFormat string
	appConfig *config.Config
	appLogger *logger.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "casecraft",
	Short: "BDD test-case enforcement for generated QA output",
	Long: `Casecraft reshapes loosely structured test-case text produced by a
generative model into strict, numbered Given/When/Then test cases.

It enforces one Given, one When, and one Then per case, repairs missing
roles with category-aware defaults, renumbers cases with 3-digit ids, and
converts the canonical output into structured records for test-management
import.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in current directory and ./config with name "config" (without extension).
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("CASECRAFT")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Keys absent from the file keep their defaults.
	appConfig = config.DefaultConfig()
	cobra.CheckErr(viper.Unmarshal(appConfig))
	cobra.CheckErr(appConfig.Validate())
}

// initLogger initializes the global logger. The --debug flag and the app
// config's debug setting both enable debug logging.
func initLogger() {
	appLogger = logger.NewFromFlags(debug || GetConfig().App.Debug, logFormat)
	slog.SetDefault(appLogger.Logger)
}

// GetLogger returns the global logger
func GetLogger() *logger.Logger {
	if appLogger == nil {
		appLogger = logger.NewFromFlags(false, "text")
	}
	return appLogger
}

// GetConfig returns the application configuration, defaults before Execute.
func GetConfig() *config.Config {
	if appConfig == nil {
		appConfig = config.DefaultConfig()
	}
	return appConfig
}
