package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/insight-atlas/pkg/server"
	"github.com/de-tools/insight-atlas/pkg/services/config"
	"github.com/de-tools/insight-atlas/pkg/services/insight"
	"github.com/de-tools/insight-atlas/pkg/store/forecast"
	"github.com/de-tools/insight-atlas/pkg/store/metrics"
	"github.com/de-tools/insight-atlas/pkg/store/sqlite"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Insight Atlas web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "insight-atlas.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Str("provider", cfg.Provider.Type).
		Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Server.Addr,
		Dependencies: server.Dependencies{
			Provider: provider,
			Engine:   insight.NewEngine(),
		},
	})

	return api.Start()
}

func buildProvider(cfg *config.Config) (metrics.Provider, error) {
	switch cfg.Provider.Type {
	case config.ProviderRemote:
		return forecast.NewClient(cfg.Provider.UpstreamURL), nil
	default:
		db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Provider.DBPath})
		if err != nil {
			return nil, fmt.Errorf("failed to open metrics database: %w", err)
		}
		return sqlite.NewProvider(db)
	}
}
