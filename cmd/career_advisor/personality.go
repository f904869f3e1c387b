package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/personality"
)

var personalityCmd = &cobra.Command{
	Use:   "personality",
	Short: "Run the career personality quiz",
	Long:  "Without flags, prints the quiz questions. With --responses, tallies the answer letters (A-D, in question order) into a color category with career suggestions.",
	RunE:  runPersonality,
}

var (
	personalityResponses string
	personalityVerbose   bool
)

func init() {
	personalityCmd.Flags().StringVarP(&personalityResponses, "responses", "r", "", "Comma-separated answer letters, e.g. 'a,b,a,c'")
	personalityCmd.Flags().BoolVarP(&personalityVerbose, "verbose", "v", false, "Print a formatted report instead of JSON")

	rootCmd.AddCommand(personalityCmd)
}

func runPersonality(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	analyzer := personality.New(cat)

	if personalityResponses == "" {
		for i, question := range analyzer.Questions() {
			fmt.Fprintf(os.Stdout, "%2d. %s\n", i+1, question)
		}
		return nil
	}

	responses := make(map[int]string)
	for i, answer := range strings.Split(personalityResponses, ",") {
		responses[i] = strings.TrimSpace(answer)
	}

	result := analyzer.Classify(responses)

	if personalityVerbose {
		observability.NewPrinter(os.Stdout).PrintPersonality(&result)
		return nil
	}
	return printJSON(result)
}
