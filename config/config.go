package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	AdminAPIURL    string        `yaml:"admin_api_url"`
	RetailAPIURL   string        `yaml:"retail_api_url"`
	APIToken       string        `yaml:"api_token"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SearchDebounce time.Duration `yaml:"search_debounce"`
	LogLevel       string        `yaml:"log_level"`
	LogFile        string        `yaml:"log_file"`
	JWTSecret      string        `yaml:"jwt_secret"`
	MockAddr       string        `yaml:"mock_addr"`
}

// AppConfig holds the application-wide configuration once Load has run.
var AppConfig Config

// Environment keys.
const (
	EnvConfigFile = "SHOPADMIN_CONFIG"
	EnvAdminURL   = "SHOPADMIN_ADMIN_URL"
	EnvRetailURL  = "SHOPADMIN_RETAIL_URL"
	EnvToken      = "SHOPADMIN_TOKEN"
	EnvTimeout    = "SHOPADMIN_TIMEOUT"
	EnvDebounce   = "SHOPADMIN_DEBOUNCE"
	EnvLogLevel   = "SHOPADMIN_LOG_LEVEL"
	EnvLogFile    = "SHOPADMIN_LOG_FILE"
	EnvJWTSecret  = "JWT_SECRET"
	EnvMockAddr   = "SHOPADMIN_MOCK_ADDR"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		AdminAPIURL:    "http://localhost:8080",
		RetailAPIURL:   "http://localhost:8080",
		SearchDebounce: 300 * time.Millisecond,
		LogLevel:       "info",
		LogFile:        "shopadmin.log",
		MockAddr:       "localhost:8080",
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// SHOPADMIN_CONFIG, a .env file and the process environment, in increasing
// order of precedence. The result is also stored in AppConfig.
func Load(envFiles ...string) (Config, error) {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load(envFiles...)

	cfg := Defaults()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	AppConfig = cfg
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString(&c.AdminAPIURL, EnvAdminURL)
	setString(&c.RetailAPIURL, EnvRetailURL)
	setString(&c.APIToken, EnvToken)
	setString(&c.LogLevel, EnvLogLevel)
	setString(&c.LogFile, EnvLogFile)
	setString(&c.JWTSecret, EnvJWTSecret)
	setString(&c.MockAddr, EnvMockAddr)
	if err := setDuration(&c.RequestTimeout, EnvTimeout); err != nil {
		return err
	}
	return setDuration(&c.SearchDebounce, EnvDebounce)
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	c.AdminAPIURL = strings.TrimRight(c.AdminAPIURL, "/")
	c.RetailAPIURL = strings.TrimRight(c.RetailAPIURL, "/")
	if c.AdminAPIURL == "" {
		return fmt.Errorf("%s is not set", EnvAdminURL)
	}
	if c.RetailAPIURL == "" {
		return fmt.Errorf("%s is not set", EnvRetailURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%s must not be negative", EnvTimeout)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("%s must not be negative", EnvDebounce)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
