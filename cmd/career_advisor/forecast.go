package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show job demand forecasts",
	Long:  "Prints projected growth, demand level and key skills for tracked roles, optionally filtered by category.",
	RunE:  runForecast,
}

var forecastCategory string

func init() {
	forecastCmd.Flags().StringVarP(&forecastCategory, "category", "c", "all", "Category filter (technology, healthcare, finance, education)")

	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	return printJSON(cat.ForecastsByCategory(forecastCategory))
}
