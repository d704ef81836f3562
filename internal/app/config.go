package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"

	"movefunnel/internal/llm"
	"movefunnel/internal/observability"
	"movefunnel/internal/services/scan"
	"movefunnel/internal/services/session"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "MOVEFUNNEL_"

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds runtime options for building the app.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server" envPrefix:"SERVER_"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage" envPrefix:"STORAGE_"`
	LLM      LLMConfig      `mapstructure:"llm" yaml:"llm" envPrefix:"LLM_"`
	Sessions SessionsConfig `mapstructure:"sessions" yaml:"sessions" envPrefix:"SESSIONS_"`
	Scan     ScanConfig     `mapstructure:"scan" yaml:"scan" envPrefix:"SCAN_"`
	Log      LogConfig      `mapstructure:"log" yaml:"log" envPrefix:"LOG_"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" yaml:"addr" env:"ADDR"`
	CORSOrigins  []string      `mapstructure:"cors_origins" yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	Debug        bool          `mapstructure:"debug" yaml:"debug" env:"DEBUG"`
}

// StorageConfig selects where session snapshots live. A non-empty
// passphrase encrypts snapshots at rest.
type StorageConfig struct {
	Driver     string `mapstructure:"driver" yaml:"driver" env:"DRIVER"`
	Dir        string `mapstructure:"dir" yaml:"dir" env:"DIR"`
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path" env:"SQLITE_PATH"`
	Passphrase string `mapstructure:"passphrase" yaml:"passphrase,omitempty" env:"PASSPHRASE"`
}

// LLMConfig configures the language model used by chat and insights.
type LLMConfig struct {
	APIKey           string        `mapstructure:"api_key" yaml:"api_key,omitempty" env:"API_KEY"`
	BaseURL          string        `mapstructure:"base_url" yaml:"base_url" env:"BASE_URL"`
	Model            string        `mapstructure:"model" yaml:"model" env:"MODEL"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout" env:"TIMEOUT"`
	ChatMaxTokens    int           `mapstructure:"chat_max_tokens" yaml:"chat_max_tokens" env:"CHAT_MAX_TOKENS"`
	InsightMaxTokens int           `mapstructure:"insight_max_tokens" yaml:"insight_max_tokens" env:"INSIGHT_MAX_TOKENS"`
}

// SessionsConfig bounds in-memory sessions.
type SessionsConfig struct {
	MaxSessions int `mapstructure:"max_sessions" yaml:"max_sessions" env:"MAX_SESSIONS"`
}

// ScanConfig configures the document scanner.
type ScanConfig struct {
	Delay time.Duration `mapstructure:"delay" yaml:"delay" env:"DELAY"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" env:"LEVEL"`
	Format string `mapstructure:"format" yaml:"format" env:"FORMAT"`
}

// anthropicEnv is the provider's conventional key variable, read without
// the prefix.
type anthropicEnv struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			CORSOrigins:  []string{"*"},
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Driver:     DriverFile,
			Dir:        "data/snapshots",
			SQLitePath: "data/movefunnel.db",
		},
		LLM: LLMConfig{
			BaseURL:          llm.DefaultBaseURL,
			Model:            llm.DefaultModel,
			Timeout:          15 * time.Second,
			ChatMaxTokens:    300,
			InsightMaxTokens: 200,
		},
		Sessions: SessionsConfig{MaxSessions: session.DefaultMaxSessions},
		Scan:     ScanConfig{Delay: scan.DefaultDelay},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig layers the config file at path (or, when path is empty, a
// movefunnel.{yaml,json,toml} in . or $HOME/.movefunnel if one exists) and
// then the environment over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("movefunnel")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.movefunnel")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", v.ConfigFileUsed(), err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays environment variables on cfg. Unset variables leave
// fields untouched. MOVEFUNNEL_LLM_API_KEY wins over ANTHROPIC_API_KEY.
func ApplyEnv(cfg *Config) error {
	var ak anthropicEnv
	if err := env.Parse(&ak); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if ak.APIKey != "" {
		cfg.LLM.APIKey = ak.APIKey
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.Dir == "" {
			return errors.New("config: storage.dir is required for the file driver")
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("config: storage.sqlite_path is required for the sqlite driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is required")
	}
	if c.Sessions.MaxSessions < 0 {
		return errors.New("config: sessions.max_sessions must not be negative")
	}
	return nil
}

// Redacted returns a copy of c with secrets masked, for display.
func (c Config) Redacted() Config {
	if c.Storage.Passphrase != "" {
		c.Storage.Passphrase = "***"
	}
	if c.LLM.APIKey != "" {
		c.LLM.APIKey = observability.SanitizeAPIKey(c.LLM.APIKey)
	}
	c.Server.CORSOrigins = append([]string(nil), c.Server.CORSOrigins...)
	return c
}
