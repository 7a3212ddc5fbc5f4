package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "PIG"

var pgIdentRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// Load reads config.yaml from the working directory when present, then
// environment variables, which take precedence over file values.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile is Load with an explicit config file, which must exist.
// An empty path behaves like Load.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return Load()
	}

	v := newViper()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", 3030)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.schema", "pig")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	// AutomaticEnv only resolves keys viper already knows about, and
	// database.url has no default.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"server.request_timeout",
		"server.shutdown_timeout",
		"database.url",
		"database.schema",
		"database.max_conns",
		"database.min_conns",
	} {
		envVar := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// pgident only accepts plain lower-case identifiers, so the schema never
	// needs quoting beyond what pgx.Identifier does.
	_ = validate.RegisterValidation("pgident", func(fl validator.FieldLevel) bool {
		return pgIdentRegex.MatchString(fl.Field().String())
	})
	return validate
}
