package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		URL string // SQLite DSN; empty means the store stays unavailable
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Log struct {
		Mode string // "dev" or "prod"
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_url", "")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("log_mode", "dev")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			URL: v.GetString("DATABASE_URL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Log: Log{
			Mode: v.GetString("LOG_MODE"),
		},
	}
}
