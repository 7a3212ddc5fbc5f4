package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RequestTimeout bounds the handling of a single request, database call included.
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"required,gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0"`
}

// DatabaseConfig contains the PostgreSQL settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// Schema holds the stored routines the gateway calls.
	Schema   string `mapstructure:"schema" validate:"required,pgident"`
	MaxConns int32  `mapstructure:"max_conns" validate:"gt=0"`
	MinConns int32  `mapstructure:"min_conns" validate:"gte=0,ltefield=MaxConns"`
}
