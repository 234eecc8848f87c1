package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// HTTP Server
	Port string

	// Persistence
	Backend  string // sqlite | jsonfile | memory
	DBPath   string
	DataFile string

	// AMQP change events (optional)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Mirror worker
	MirrorFile string

	// Logging
	LogLevel string
}

// fileConfig mirrors the optional YAML config file. Env vars override
// anything set here.
type fileConfig struct {
	Port     string `yaml:"port"`
	Backend  string `yaml:"backend"`
	DBPath   string `yaml:"db_path"`
	DataFile string `yaml:"data_file"`
	AMQP     struct {
		URL      string `yaml:"url"`
		Exchange string `yaml:"exchange"`
		Queue    string `yaml:"queue"`
	} `yaml:"amqp"`
	MirrorFile string `yaml:"mirror_file"`
	LogLevel   string `yaml:"log_level"`
}

// Load builds the configuration from the optional YAML file under the
// XDG config home, then environment variables, then defaults.
func Load() *Config {
	fc := loadFile(FilePath())

	cfg := &Config{
		Port:    getEnv("HESAB_PORT", fallback(fc.Port, "8087")),
		Backend: getEnv("HESAB_BACKEND", fallback(fc.Backend, "sqlite")),
		DBPath:  getEnv("HESAB_DB_PATH", fallback(fc.DBPath, defaultDataPath("hesab.db"))),
		DataFile: getEnv("HESAB_DATA_FILE",
			fallback(fc.DataFile, defaultDataPath("hesab.json"))),

		AMQPURL:      getEnv("AMQP_URL", fc.AMQP.URL),
		AMQPExchange: getEnv("AMQP_EXCHANGE", fallback(fc.AMQP.Exchange, "hesab")),
		AMQPQueue:    getEnv("AMQP_QUEUE", fallback(fc.AMQP.Queue, "hesab_changes")),

		MirrorFile: getEnv("HESAB_MIRROR_FILE",
			fallback(fc.MirrorFile, defaultDataPath("mirror.json"))),

		LogLevel: getEnv("HESAB_LOG_LEVEL", fallback(fc.LogLevel, "info")),
	}

	return cfg
}

// FilePath returns the location of the optional YAML config file.
func FilePath() string {
	return filepath.Join(xdg.ConfigHome, "hesab", "config.yml")
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"sqlite", "jsonfile", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "sqlite" && c.DBPath == "" {
		errors = append(errors, "database path cannot be empty when using sqlite backend")
	}
	if c.Backend == "jsonfile" && c.DataFile == "" {
		errors = append(errors, "data file path cannot be empty when using jsonfile backend")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func loadFile(path string) fileConfig {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	// A broken config file falls back to env/defaults; Validate will
	// catch anything that matters.
	_ = yaml.Unmarshal(data, &fc)
	return fc
}

func defaultDataPath(name string) string {
	return filepath.Join(xdg.DataHome, "hesab", name)
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
