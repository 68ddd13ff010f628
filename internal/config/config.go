// Package config holds run configuration for the ETL pipeline.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/econotab/internal/tabular"
)

// Defaults mirror the public dataset the tool was built around: the
// archived Wikipedia list of countries by nominal GDP.
const (
	DefaultURL        = "https://web.archive.org/web/20230902185326/https://en.wikipedia.org/wiki/List_of_countries_by_GDP_%28nominal%29"
	DefaultTableClass = "wikitable"
	DefaultTimeout    = 30 * time.Second
	DefaultCSVPath    = "Countries_by_GDP.csv"
	DefaultDBPath     = "World_Economies.db"

	// DefaultThreshold is the reporting cutoff in billions USD.
	DefaultThreshold = 100.0
)

// Run is the configuration for a single pipeline run.
type Run struct {
	URL        string        `mapstructure:"url" validate:"required,url"`
	TableClass string        `mapstructure:"table_class" validate:"required"`
	MinRows    int           `mapstructure:"min_rows" validate:"gte=0"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
	CSVPath    string        `mapstructure:"csv" validate:"required"`
	DBPath     string        `mapstructure:"db" validate:"required"`
	Threshold  float64       `mapstructure:"threshold"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// Default returns the zero-flag configuration.
func Default() Run {
	return Run{
		URL:        DefaultURL,
		TableClass: DefaultTableClass,
		MinRows:    tabular.DefaultMinRows,
		Timeout:    DefaultTimeout,
		CSVPath:    DefaultCSVPath,
		DBPath:     DefaultDBPath,
		Threshold:  DefaultThreshold,
	}
}

// FromViper builds a Run from bound flags, environment and config file,
// falling back to the defaults for anything unset.
func FromViper() Run {
	r := Default()
	if v := viper.GetString("url"); v != "" {
		r.URL = v
	}
	if v := viper.GetString("table_class"); v != "" {
		r.TableClass = v
	}
	if viper.IsSet("min_rows") {
		r.MinRows = viper.GetInt("min_rows")
	}
	if v := viper.GetDuration("timeout"); v != 0 {
		r.Timeout = v
	}
	if v := viper.GetString("csv"); v != "" {
		r.CSVPath = v
	}
	if v := viper.GetString("db"); v != "" {
		r.DBPath = v
	}
	if viper.IsSet("threshold") {
		r.Threshold = viper.GetFloat64("threshold")
	}
	r.UserAgent = viper.GetString("user_agent")
	return r
}

// Validate checks the configuration.
func (r Run) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(r)
}
