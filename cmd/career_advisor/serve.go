package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/server"
)

var (
	servePort   int
	serveSeed   int64
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation, skill gap, chat, personality and forecasting endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "Seed for chat template selection (0 = random)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a config JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults(serveConfig, config.Config{Port: servePort, Seed: serveSeed})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	srv, err := server.New(server.Config{
		Port: cfg.Port,
		Seed: cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
