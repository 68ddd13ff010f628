package commands

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/econotab/internal/config"
	"github.com/jmylchreest/econotab/internal/logger"
	"github.com/jmylchreest/econotab/internal/pipeline"
	"github.com/jmylchreest/econotab/internal/tabular"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, clean and persist the economy table",
	Long: `Run the full pipeline once: fetch the source page, select the
data table, detect the country and GDP columns, clean the figures into
billions of USD, write the CSV and SQLite outputs, and report every
economy above the query threshold.

All flags default to the fixed configuration the tool was built around,
so a bare "econotab run" performs the canonical job.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()

	flags.StringP("url", "u", config.DefaultURL, "source page URL")
	flags.String("table-class", config.DefaultTableClass, "CSS class of candidate tables")
	flags.Int("min-rows", tabular.DefaultMinRows, "row count a table must exceed to be selected outright")
	flags.Duration("timeout", config.DefaultTimeout, "request timeout")
	flags.String("csv", config.DefaultCSVPath, "CSV output path")
	flags.String("db", config.DefaultDBPath, "SQLite output path")
	flags.Float64("threshold", config.DefaultThreshold, "report economies above this GDP (billions USD)")
	flags.String("user-agent", "", "override the request user agent")

	_ = viper.BindPFlag("url", flags.Lookup("url"))
	_ = viper.BindPFlag("table_class", flags.Lookup("table-class"))
	_ = viper.BindPFlag("min_rows", flags.Lookup("min-rows"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("csv", flags.Lookup("csv"))
	_ = viper.BindPFlag("db", flags.Lookup("db"))
	_ = viper.BindPFlag("threshold", flags.Lookup("threshold"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
}

func runRun(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.FromViper()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runner := pipeline.New(cfg, nil)
	defer runner.Close()

	start := time.Now()
	result, err := runner.Run(ctx)
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("pipeline finished", "duration", time.Since(start))

	printReport(cmd, cfg.Threshold, result)
	return nil
}

func printReport(cmd *cobra.Command, threshold float64, result *pipeline.Result) {
	out := cmd.OutOrStdout()
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "COUNTRIES WITH GDP > %s BILLION USD\n",
		humanize.CommafWithDigits(threshold, 0))
	fmt.Fprintln(out, rule)
	for _, row := range result.TopEconomies {
		fmt.Fprintf(out, "%-44s %14s\n", row.Country,
			humanize.CommafWithDigits(row.GDPBillions, 2))
	}
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Total countries: %d\n", len(result.TopEconomies))
	fmt.Fprintf(out, "CSV: %s\nDatabase: %s\n", result.CSVPath, result.DBPath)
}
