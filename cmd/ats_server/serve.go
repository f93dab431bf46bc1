package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/config"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes candidate and job CRUD endpoints
plus the suitable-jobs and suitable-candidates ranking endpoints.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Flags override config file values
	if servePort != 0 {
		cfg.Port = servePort
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in the config file)")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
