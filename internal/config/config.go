// Package config reads the configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	// HTTP server
	APIURL          string
	Port            string
	GinMode         string
	CORSOrigins     []string
	EnablePprof     bool
	ShutdownTimeout time.Duration

	// Logging
	LogFormat string

	// Database
	DataDir string
	DBFile  string

	// Billing and dashboard
	DefaultDueDay  int
	CreditPatterns []string
	RecentDays     int

	baseURL *url.URL
}

// defaults are the values used for variables that are not set.
var defaults = map[string]any{
	"PORT":                    "8080",
	"GIN_MODE":                gin.ReleaseMode,
	"ENABLE_PPROF":            false,
	"SHUTDOWN_TIMEOUT":        10 * time.Second,
	"DATA_DIR":                "data",
	"DB_FILE":                 "finance.db",
	"DEFAULT_DUE_DAY":         10,
	"CREDIT_PAYMENT_PATTERNS": "*credito*,cartao",
	"RECENT_WINDOW_DAYS":      15,
}

// Load reads the configuration from the environment.
//
// Variables from a .env file in the working directory are loaded first,
// variables that are already set in the environment take precedence.
// Numbers and durations that cannot be parsed are read as zero so
// that validation reports them.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{
		APIURL:          getString(v, "API_URL"),
		Port:            getString(v, "PORT"),
		GinMode:         getString(v, "GIN_MODE"),
		CORSOrigins:     getList(v, "CORS_ALLOW_ORIGINS"),
		EnablePprof:     v.GetBool("ENABLE_PPROF"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogFormat:       getString(v, "LOG_FORMAT"),
		DataDir:         getString(v, "DATA_DIR"),
		DBFile:          getString(v, "DB_FILE"),
		DefaultDueDay:   v.GetInt("DEFAULT_DUE_DAY"),
		CreditPatterns:  getList(v, "CREDIT_PAYMENT_PATTERNS"),
		RecentDays:      v.GetInt("RECENT_WINDOW_DAYS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error listing
// all problems found.
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "environment variable API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	} else {
		c.baseURL = u
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errors = append(errors, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	if c.DataDir == "" {
		errors = append(errors, "DATA_DIR must not be empty")
	}

	if c.DBFile == "" {
		errors = append(errors, "DB_FILE must not be empty")
	}

	if c.DefaultDueDay < 1 || c.DefaultDueDay > 31 {
		errors = append(errors, fmt.Sprintf("invalid default due day %d: must be between 1 and 31", c.DefaultDueDay))
	}

	if len(c.CreditPatterns) == 0 {
		errors = append(errors, "CREDIT_PAYMENT_PATTERNS must contain at least one pattern")
	}

	if c.RecentDays < 1 {
		errors = append(errors, fmt.Sprintf("invalid recent window %d: must be at least 1 day", c.RecentDays))
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL is the parsed API_URL. It is only set after successful validation.
func (c *Config) BaseURL() *url.URL {
	return c.baseURL
}

// DBPath is the path of the SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// Addr is the address the HTTP server listens on.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getString(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

// getList splits a comma separated variable. Empty elements are dropped.
func getList(v *viper.Viper, key string) []string {
	var list []string
	for _, value := range strings.Split(getString(v, key), ",") {
		if value = strings.TrimSpace(value); value != "" {
			list = append(list, value)
		}
	}
	return list
}
