// Package config loads the bridge configuration from the process
// environment, with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envUser     = "VAILLANT_USER"
	envPassword = "VAILLANT_PASSWORD"
	envBrand    = "VAILLANT_BRAND"
	envCountry  = "VAILLANT_COUNTRY"
	envLogLevel = "LOG_LEVEL"
	envPort     = "PORT"

	defaultBrand    = "vaillant"
	defaultLogLevel = "info"
	defaultPort     = "8080"
)

// Config carries everything the process needs from its environment.
type Config struct {
	User     string
	Password string
	Brand    string
	Country  string
	LogLevel string
	Port     string
}

// Load reads a .env file when present, binds the environment and applies
// defaults. Missing credentials are a startup failure, not a runtime one.
func Load() (*Config, error) {
	// Best-effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault(envBrand, defaultBrand)
	viper.SetDefault(envLogLevel, defaultLogLevel)
	viper.SetDefault(envPort, defaultPort)

	cfg := &Config{
		User:     viper.GetString(envUser),
		Password: viper.GetString(envPassword),
		Brand:    viper.GetString(envBrand),
		Country:  viper.GetString(envCountry),
		LogLevel: viper.GetString(envLogLevel),
		Port:     viper.GetString(envPort),
	}

	if cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%s and %s must be set", envUser, envPassword)
	}
	if cfg.Country == "" {
		return nil, fmt.Errorf("%s must be set", envCountry)
	}
	return cfg, nil
}
