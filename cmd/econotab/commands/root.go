// Package commands implements the CLI commands for econotab.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "econotab",
	Short: "ETL for HTML reference tables of country economies",
	Long: `Econotab fetches a page holding a country/GDP reference table,
picks the data table, cleans the figures, and writes the result to a CSV
file and a SQLite database, then reports the largest economies.

Examples:
  # Run against the default archived Wikipedia GDP page
  econotab run

  # Point at another page and keep the outputs elsewhere
  econotab run -u "https://example.org/gdp" --csv out/gdp.csv --db out/econ.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.econotab.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	// Local .env, if present, feeds the environment before viper reads it
	_ = godotenv.Load()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".econotab")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ECONOTAB")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
