package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/observability"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Full advisory report for a user profile",
	Long:  "Runs job matching and skill gap analysis concurrently and prints a combined report: top recommendations, inferred target roles and the skill gaps that block them.",
	RunE:  runAdvise,
}

var (
	adviseProfile string
	adviseTopN    int
	adviseConfig  string
	adviseVerbose bool
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseProfile, "profile", "p", "", "Path to a user profile JSON file (required)")
	adviseCmd.Flags().IntVar(&adviseTopN, "top", 0, "Number of recommendations to return (default 5)")
	adviseCmd.Flags().StringVar(&adviseConfig, "config", "", "Path to a config JSON file")
	adviseCmd.Flags().BoolVarP(&adviseVerbose, "verbose", "v", false, "Print a formatted report instead of JSON")

	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults(adviseConfig, config.Config{
		Profile: adviseProfile,
		TopN:    adviseTopN,
		Verbose: adviseVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Profile == "" {
		return fmt.Errorf("profile is required (use --profile or a config file)")
	}
	if cfg.TopN == 0 {
		cfg.TopN = defaultTopN
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	report, err := advisor.New(cat).Advise(context.Background(), profile, cfg.TopN)
	if err != nil {
		return fmt.Errorf("advisory run failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintReport(report)
		return nil
	}
	return printJSON(report)
}
