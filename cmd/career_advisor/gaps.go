package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/gaps"
	"github.com/jonathan/career-advisor/internal/observability"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Detect skill gaps for a user profile",
	Long:  "Infers target roles from the profile's interests, compares required skill levels against the user's estimated levels and prints the gaps ranked by importance.",
	RunE:  runGaps,
}

var (
	gapsProfile string
	gapsMax     int
	gapsConfig  string
	gapsVerbose bool
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsProfile, "profile", "p", "", "Path to a user profile JSON file (required)")
	gapsCmd.Flags().IntVar(&gapsMax, "max-gaps", 0, "Maximum gaps to report (default 10)")
	gapsCmd.Flags().StringVar(&gapsConfig, "config", "", "Path to a config JSON file")
	gapsCmd.Flags().BoolVarP(&gapsVerbose, "verbose", "v", false, "Print a formatted report instead of JSON")

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults(gapsConfig, config.Config{
		Profile: gapsProfile,
		MaxGaps: gapsMax,
		Verbose: gapsVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Profile == "" {
		return fmt.Errorf("profile is required (use --profile or a config file)")
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	analyzer := gaps.New(cat)
	result := analyzer.Analyze(profile, analyzer.TargetRoles(profile))
	if cfg.MaxGaps > 0 && len(result) > cfg.MaxGaps {
		result = result[:cfg.MaxGaps]
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintSkillGaps(result)
		return nil
	}
	return printJSON(result)
}
