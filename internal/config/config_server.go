package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view of the contacts server.
type ServerConfig struct {
	App struct {
		Version  string
		LogLevel string
	}
	Server struct {
		HTTPAddress    string
		RequestTimeout time.Duration
	}
	Storage struct {
		DB struct {
			DSN string
		}
	}
}

// GetServerConfig loads the server configuration from defaults, the JSON
// file, environment variables, and args, then validates it.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{}
	serverCfg.App.Version = cfg.App.Version
	serverCfg.App.LogLevel = cfg.App.LogLevel
	serverCfg.Server.HTTPAddress = cfg.Server.HTTPAddress
	serverCfg.Server.RequestTimeout = cfg.Server.RequestTimeout
	serverCfg.Storage.DB.DSN = cfg.Storage.DB.DSN

	return serverCfg, serverCfg.validate()
}
