package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the namesprouts server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// ServerURL is the base URL of the server.
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`
	// Production marks secure cookies and release mode.
	Production bool `yaml:"production" mapstructure:"production"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Session holds the session cookie configuration.
	Session *SessionConfig `yaml:"session" mapstructure:"session"`
	// Static holds the static asset configuration.
	Static *StaticConfig `yaml:"static" mapstructure:"static"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// SessionConfig holds the session cookie configuration.
type SessionConfig struct {
	// Key is the secret used to sign session cookies. Required.
	Key string `yaml:"key" mapstructure:"key"`
	// MaxAge is the idle expiry of a session in seconds.
	MaxAge int `yaml:"max_age" mapstructure:"max_age"`
	// CookieName is the name of the session cookie.
	CookieName string `yaml:"cookie_name" mapstructure:"cookie_name"`
}

// StaticConfig holds the static asset configuration.
type StaticConfig struct {
	// Dir is the directory served under /static.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// FlowerRescanInterval is the interval in minutes for rescanning flower assets.
	FlowerRescanInterval int `yaml:"flower_rescan_interval" mapstructure:"flower_rescan_interval"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("NAMESPROUTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.namesprouts")
		v.AddConfigPath("/etc/namesprouts")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with NAMESPROUTS_ prefix will override config file values")
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3003")
	v.SetDefault("server_url", "http://localhost:3003")
	v.SetDefault("production", false)
	v.SetDefault("log_level", "info")

	v.SetDefault("database.path", "namesprouts.db")

	// Session defaults
	v.SetDefault("session.max_age", 1800) // 30 minutes
	v.SetDefault("session.cookie_name", "namesprouts_session")

	// Static asset defaults
	v.SetDefault("static.dir", "./static")
	v.SetDefault("static.flower_rescan_interval", 15)
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing namesprouts config")
	}

	if c.Session == nil || c.Session.Key == "" {
		return fmt.Errorf("session key is required, set session.key or NAMESPROUTS_SESSION_KEY")
	}
	if c.Session.MaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Static == nil || c.Static.Dir == "" {
		return fmt.Errorf("static dir is required")
	}

	return nil
}
