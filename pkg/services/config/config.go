package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ProviderSQLite = "sqlite"
	ProviderRemote = "remote"
)

type Server struct {
	Addr string `mapstructure:"addr"`
}

type Provider struct {
	// Type selects the metrics provider: "sqlite" for local aggregated
	// tables, "remote" for the aggregation service.
	Type        string `mapstructure:"type"`
	DBPath      string `mapstructure:"db_path"`
	UpstreamURL string `mapstructure:"upstream_url"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Provider Provider `mapstructure:"provider"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("provider.type", ProviderSQLite)
	v.SetDefault("provider.db_path", "insight-atlas.db")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider.Type {
	case ProviderSQLite:
		if c.Provider.DBPath == "" {
			return fmt.Errorf("provider.db_path is required for the sqlite provider")
		}
	case ProviderRemote:
		if c.Provider.UpstreamURL == "" {
			return fmt.Errorf("provider.upstream_url is required for the remote provider")
		}
	default:
		return fmt.Errorf("unknown provider type %q", c.Provider.Type)
	}
	return nil
}
