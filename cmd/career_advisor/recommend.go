package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/observability"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog jobs against a user profile",
	Long:  "Scores every job in the catalog against the profile (skill coverage, experience, education, industry and interest similarity) and prints the top matches.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendTopN    int
	recommendConfig  string
	recommendVerbose bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to a user profile JSON file (required)")
	recommendCmd.Flags().IntVar(&recommendTopN, "top", 0, "Number of recommendations to return (default 5)")
	recommendCmd.Flags().StringVar(&recommendConfig, "config", "", "Path to a config JSON file")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a formatted report instead of JSON")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults(recommendConfig, config.Config{
		Profile: recommendProfile,
		TopN:    recommendTopN,
		Verbose: recommendVerbose,
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

	recommendations := matching.New(cat).Recommend(profile, cfg.TopN)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRecommendations(recommendations)
		return nil
	}
	return printJSON(recommendations)
}
