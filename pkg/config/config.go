package config

import (
	"fmt"
	"os"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	Hostname                  string        `koanf:"-"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

const configFileENV = "CONFIG_FILE"

// envKeys are the environment variables that can override config file values.
// Anything else in the environment is ignored.
var envKeys = []string{
	"DATABASE_BUSY_TIMEOUT",
	"DATABASE_CONNECT_RETRY_COUNT",
	"DATABASE_CONNECT_RETRY_DELAY",
	"DATABASE_DEBUG",
	"DATABASE_FILE_PATH",
	"SERVER_HOST",
	"SERVER_PORT",
}

// New loads the config from an optional YAML file (path taken from
// CONFIG_FILE, default ./config.yaml) and then from the environment, with
// environment variables taking precedence over file values.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		Hostname:                  hostname,
		ServerHost:                "0.0.0.0",
		ServerPort:                3689,
	}

	configFilePath := os.Getenv(configFileENV)
	if configFilePath == "" {
		configFilePath = "./config.yaml"
	}

	k := koanf.New(".")

	// A missing config file is fine; every value has a default or can come
	// from the environment.
	if _, err := os.Stat(configFilePath); err == nil {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file: %s", configFilePath)
		}
	}

	err = k.Load(env.Provider("", ".", func(s string) string {
		for _, key := range envKeys {
			if s == key {
				return toSnakeCase(s)
			}
		}
		return ""
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.DatabaseFilePath == "" {
		return nil, errors.New(requiredErrMsg("DATABASE_FILE_PATH"))
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests: an in-memory database and a
// loopback server host.
func NewForTest() *Config {
	return &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 1,
		DatabaseConnectRetryDelay: time.Millisecond,
		DatabaseFilePath:          ":memory:",
		ServerHost:                "127.0.0.1",
	}
}

func requiredErrMsg(envKey string) string {
	return fmt.Sprintf("missing required config: %s (%s)", envKey, toSnakeCase(envKey))
}

func toSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
