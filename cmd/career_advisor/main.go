// Package main provides the entry point for the Career Advisor CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_advisor",
	Short: "Career Advisor recommendation engine",
	Long:  "Career Advisor scores user profiles against a job catalog, detects skill gaps, forecasts job demand and chats about career moves, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
