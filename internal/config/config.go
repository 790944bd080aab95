package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Log      *LogConfig      `mapstructure:"log"`
	Database *DatabaseConfig `mapstructure:"database"`
}

type APIConfig struct {
	Port               string        `mapstructure:"port"`
	Environment        string        `mapstructure:"environment"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig holds the single connection string. An empty URL selects
// the embedded SQLite store.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads the YAML file at path and overlays environment variables.
// A missing file is not an error; defaults apply.
func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// Watch re-reads the file at path whenever it changes and passes the new
// configuration to onChange.
func Watch(path string, onChange func(*AppConfig)) (*viper.Viper, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		conf, err := decode(v)
		if err != nil {
			return
		}
		onChange(conf)
	})
	v.WatchConfig()

	return v, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	ext := filepath.Ext(path)
	v.SetConfigName(strings.TrimSuffix(filepath.Base(path), ext))
	v.SetConfigType(strings.TrimPrefix(ext, "."))
	v.AddConfigPath(filepath.Dir(path))

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	return v, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8000")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.base_url", "localhost:8000")
	v.SetDefault("api.allowed_cors_domains", []string{"*"})
	v.SetDefault("api.shutdown_timeout", 10*time.Second)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.url", "")
}

func bindEnvs(v *viper.Viper) error {
	envs := map[string]string{
		"api.port":                 "PORT",
		"api.environment":          "ENVIRONMENT",
		"api.base_url":             "BASE_URL",
		"api.allowed_cors_domains": "CORS_ALLOWED_DOMAINS",
		"gin.mode":                 "GIN_MODE",
		"log.level":                "LOG_LEVEL",
		"database.url":             "DATABASE_URL",
	}
	for key, env := range envs {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("v.BindEnv(%s) -> %w", env, err)
		}
	}

	return nil
}
