package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/gaps"
	"github.com/jonathan/career-advisor/internal/observability"
)

var pathCmd = &cobra.Command{
	Use:   "path <skill>",
	Short: "Build a learning path for one skill",
	Long:  "Prints a level-by-level plan for raising one skill from a current to a target proficiency level, with curated resources per milestone.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

var (
	pathCurrentLevel int
	pathTargetLevel  int
	pathVerbose      bool
)

func init() {
	pathCmd.Flags().IntVar(&pathCurrentLevel, "current", 1, "Current proficiency level (1-10)")
	pathCmd.Flags().IntVar(&pathTargetLevel, "target", 8, "Target proficiency level (1-10)")
	pathCmd.Flags().BoolVarP(&pathVerbose, "verbose", "v", false, "Print a formatted report instead of JSON")

	rootCmd.AddCommand(pathCmd)
}

func runPath(_ *cobra.Command, args []string) error {
	if pathCurrentLevel < 1 || pathCurrentLevel > 10 {
		return fmt.Errorf("current must be between 1 and 10, got %d", pathCurrentLevel)
	}
	if pathTargetLevel < 1 || pathTargetLevel > 10 {
		return fmt.Errorf("target must be between 1 and 10, got %d", pathTargetLevel)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	path := gaps.New(cat).LearningPath(args[0], pathCurrentLevel, pathTargetLevel)

	if pathVerbose {
		observability.NewPrinter(os.Stdout).PrintLearningPath(path)
		return nil
	}
	return printJSON(path)
}
