package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/gateway/config"
	ConfigFileName    = "gateway.yml"
)

// GatewayConfig holds the storage layer settings. Values come from the
// config file and can be overridden through GATEWAY_* environment
// variables.
type GatewayConfig struct {
	// DatabaseURL is the PostgreSQL connection URL for the primary tier.
	// Empty means the primary tier is skipped entirely, unless the
	// discrete database_* parts below assemble one.
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// DatabaseHost and friends are the discrete alternative to
	// DatabaseURL. They only take effect when no explicit URL is set.
	DatabaseHost     string `yaml:"database_host" json:"database_host"`
	DatabasePort     int    `yaml:"database_port" json:"database_port"`
	DatabaseUser     string `yaml:"database_user" json:"database_user"`
	DatabasePassword string `yaml:"database_password" json:"database_password"`
	DatabaseName     string `yaml:"database_name" json:"database_name"`
	DatabaseSSLMode  string `yaml:"database_ssl_mode" json:"database_ssl_mode"`

	// PoolSize is the number of idle primary connections to maintain.
	PoolSize int `yaml:"pool_size" json:"pool_size"`

	// MaxOverflow is the number of extra connections allowed beyond PoolSize.
	MaxOverflow int `yaml:"max_overflow" json:"max_overflow"`

	// PoolRecycleSeconds is the maximum lifetime of a pooled connection.
	PoolRecycleSeconds int `yaml:"pool_recycle_seconds" json:"pool_recycle_seconds"`

	// LogSQL enables statement logging on the primary tier.
	LogSQL bool `yaml:"log_sql" json:"log_sql"`

	// SQLitePath is the file path for the secondary tier's database.
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`

	// PrimaryTimeoutSeconds bounds the primary tier's connection attempt.
	PrimaryTimeoutSeconds int `yaml:"primary_timeout_seconds" json:"primary_timeout_seconds"`

	// SecondaryTimeoutSeconds bounds the secondary tier's open attempt.
	SecondaryTimeoutSeconds int `yaml:"secondary_timeout_seconds" json:"secondary_timeout_seconds"`

	// TotalTimeoutSeconds bounds the whole initialization sweep across tiers.
	TotalTimeoutSeconds int `yaml:"total_timeout_seconds" json:"total_timeout_seconds"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// NewDefault returns a config with default values
func NewDefault() *GatewayConfig {
	return &GatewayConfig{
		DatabaseURL:             "",
		DatabasePort:            5432,
		DatabaseName:            "gateway",
		PoolSize:                10,
		MaxOverflow:             20,
		PoolRecycleSeconds:      3600,
		LogSQL:                  false,
		SQLitePath:              "gateway.db",
		PrimaryTimeoutSeconds:   10,
		SecondaryTimeoutSeconds: 5,
		TotalTimeoutSeconds:     30,
		sources:                 make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*GatewayConfig, error) {
	config := NewDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("GATEWAY_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig GatewayConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()
	config.assembleDatabaseURL()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func attributeNames() []string {
	return []string{
		"database_url", "database_host", "database_port", "database_user",
		"database_password", "database_name", "database_ssl_mode",
		"pool_size", "max_overflow", "pool_recycle_seconds",
		"log_sql", "sqlite_path", "primary_timeout_seconds",
		"secondary_timeout_seconds", "total_timeout_seconds",
	}
}

func (c *GatewayConfig) applyFileConfig(file *GatewayConfig) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.DatabaseHost != "" {
		c.DatabaseHost = file.DatabaseHost
		c.sources["database_host"] = "file"
	}
	if file.DatabasePort != 0 {
		c.DatabasePort = file.DatabasePort
		c.sources["database_port"] = "file"
	}
	if file.DatabaseUser != "" {
		c.DatabaseUser = file.DatabaseUser
		c.sources["database_user"] = "file"
	}
	if file.DatabasePassword != "" {
		c.DatabasePassword = file.DatabasePassword
		c.sources["database_password"] = "file"
	}
	if file.DatabaseName != "" {
		c.DatabaseName = file.DatabaseName
		c.sources["database_name"] = "file"
	}
	if file.DatabaseSSLMode != "" {
		c.DatabaseSSLMode = file.DatabaseSSLMode
		c.sources["database_ssl_mode"] = "file"
	}
	if file.PoolSize != 0 {
		c.PoolSize = file.PoolSize
		c.sources["pool_size"] = "file"
	}
	if file.MaxOverflow != 0 {
		c.MaxOverflow = file.MaxOverflow
		c.sources["max_overflow"] = "file"
	}
	if file.PoolRecycleSeconds != 0 {
		c.PoolRecycleSeconds = file.PoolRecycleSeconds
		c.sources["pool_recycle_seconds"] = "file"
	}
	if file.LogSQL {
		c.LogSQL = true
		c.sources["log_sql"] = "file"
	}
	if file.SQLitePath != "" {
		c.SQLitePath = file.SQLitePath
		c.sources["sqlite_path"] = "file"
	}
	if file.PrimaryTimeoutSeconds != 0 {
		c.PrimaryTimeoutSeconds = file.PrimaryTimeoutSeconds
		c.sources["primary_timeout_seconds"] = "file"
	}
	if file.SecondaryTimeoutSeconds != 0 {
		c.SecondaryTimeoutSeconds = file.SecondaryTimeoutSeconds
		c.sources["secondary_timeout_seconds"] = "file"
	}
	if file.TotalTimeoutSeconds != 0 {
		c.TotalTimeoutSeconds = file.TotalTimeoutSeconds
		c.sources["total_timeout_seconds"] = "file"
	}
}

func (c *GatewayConfig) applyEnvConfig() {
	if val := os.Getenv("GATEWAY_DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("GATEWAY_DATABASE_HOST"); val != "" {
		c.DatabaseHost = val
		c.sources["database_host"] = "environment"
	}
	if val := os.Getenv("GATEWAY_DATABASE_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.DatabasePort = i
			c.sources["database_port"] = "environment"
		}
	}
	if val := os.Getenv("GATEWAY_DATABASE_USER"); val != "" {
		c.DatabaseUser = val
		c.sources["database_user"] = "environment"
	}
	if val := os.Getenv("GATEWAY_DATABASE_PASSWORD"); val != "" {
		c.DatabasePassword = val
		c.sources["database_password"] = "environment"
	}
	if val := os.Getenv("GATEWAY_DATABASE_NAME"); val != "" {
		c.DatabaseName = val
		c.sources["database_name"] = "environment"
	}
	if val := os.Getenv("GATEWAY_DATABASE_SSL_MODE"); val != "" {
		c.DatabaseSSLMode = val
		c.sources["database_ssl_mode"] = "environment"
	}
	if val := os.Getenv("GATEWAY_POOL_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PoolSize = i
			c.sources["pool_size"] = "environment"
		}
	}
	if val := os.Getenv("GATEWAY_MAX_OVERFLOW"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MaxOverflow = i
			c.sources["max_overflow"] = "environment"
		}
	}
	if val := os.Getenv("GATEWAY_POOL_RECYCLE_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PoolRecycleSeconds = i
			c.sources["pool_recycle_seconds"] = "environment"
		}
	}
	if val := os.Getenv("GATEWAY_LOG_SQL"); val != "" {
		c.LogSQL = val == "true" || val == "1"
		c.sources["log_sql"] = "environment"
	}
	if val := os.Getenv("GATEWAY_SQLITE_PATH"); val != "" {
		c.SQLitePath = val
		c.sources["sqlite_path"] = "environment"
	}
	if val := os.Getenv("GATEWAY_PRIMARY_TIMEOUT_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PrimaryTimeoutSeconds = i
			c.sources["primary_timeout_seconds"] = "environment"
		}
	}
	if val := os.Getenv("GATEWAY_SECONDARY_TIMEOUT_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SecondaryTimeoutSeconds = i
			c.sources["secondary_timeout_seconds"] = "environment"
		}
	}
	if val := os.Getenv("GATEWAY_TOTAL_TIMEOUT_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TotalTimeoutSeconds = i
			c.sources["total_timeout_seconds"] = "environment"
		}
	}
}

// assembleDatabaseURL builds the primary connection URL from the discrete
// database_* parts. An explicit database_url always wins; without a host
// there is nothing to assemble and the primary tier stays disabled.
func (c *GatewayConfig) assembleDatabaseURL() {
	if c.DatabaseURL != "" || c.DatabaseHost == "" {
		return
	}
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.DatabaseHost, c.DatabasePort),
		Path:   "/" + c.DatabaseName,
	}
	if c.DatabaseUser != "" {
		if c.DatabasePassword != "" {
			u.User = url.UserPassword(c.DatabaseUser, c.DatabasePassword)
		} else {
			u.User = url.User(c.DatabaseUser)
		}
	}
	if c.DatabaseSSLMode != "" {
		u.RawQuery = "sslmode=" + c.DatabaseSSLMode
	}
	c.DatabaseURL = u.String()
	c.sources["database_url"] = "assembled"
}

// ConfigFilePath returns the path to the config file
func (c *GatewayConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *GatewayConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// PrimaryTimeout returns the primary tier's timeout as a duration
func (c *GatewayConfig) PrimaryTimeout() time.Duration {
	return time.Duration(c.PrimaryTimeoutSeconds) * time.Second
}

// SecondaryTimeout returns the secondary tier's timeout as a duration
func (c *GatewayConfig) SecondaryTimeout() time.Duration {
	return time.Duration(c.SecondaryTimeoutSeconds) * time.Second
}

// TotalTimeout returns the initialization sweep timeout as a duration
func (c *GatewayConfig) TotalTimeout() time.Duration {
	return time.Duration(c.TotalTimeoutSeconds) * time.Second
}

// PoolRecycle returns the pooled connection lifetime as a duration
func (c *GatewayConfig) PoolRecycle() time.Duration {
	return time.Duration(c.PoolRecycleSeconds) * time.Second
}

// Validate validates the configuration
func (c *GatewayConfig) Validate() error {
	if c.PoolSize < 0 {
		return fmt.Errorf("invalid pool_size: %d", c.PoolSize)
	}
	if c.MaxOverflow < 0 {
		return fmt.Errorf("invalid max_overflow: %d", c.MaxOverflow)
	}
	if c.TotalTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid total_timeout_seconds: %d", c.TotalTimeoutSeconds)
	}
	if c.SQLitePath == "" {
		return fmt.Errorf("sqlite_path must not be empty")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *GatewayConfig) Attributes() []Attribute {
	password := ""
	if c.DatabasePassword != "" {
		password = "****"
	}
	return []Attribute{
		{Name: "database_url", Value: redactURL(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "database_host", Value: c.DatabaseHost, Source: c.Source("database_host")},
		{Name: "database_port", Value: strconv.Itoa(c.DatabasePort), Source: c.Source("database_port")},
		{Name: "database_user", Value: c.DatabaseUser, Source: c.Source("database_user")},
		{Name: "database_password", Value: password, Source: c.Source("database_password")},
		{Name: "database_name", Value: c.DatabaseName, Source: c.Source("database_name")},
		{Name: "database_ssl_mode", Value: c.DatabaseSSLMode, Source: c.Source("database_ssl_mode")},
		{Name: "pool_size", Value: strconv.Itoa(c.PoolSize), Source: c.Source("pool_size")},
		{Name: "max_overflow", Value: strconv.Itoa(c.MaxOverflow), Source: c.Source("max_overflow")},
		{Name: "pool_recycle_seconds", Value: strconv.Itoa(c.PoolRecycleSeconds), Source: c.Source("pool_recycle_seconds")},
		{Name: "log_sql", Value: strconv.FormatBool(c.LogSQL), Source: c.Source("log_sql")},
		{Name: "sqlite_path", Value: c.SQLitePath, Source: c.Source("sqlite_path")},
		{Name: "primary_timeout_seconds", Value: strconv.Itoa(c.PrimaryTimeoutSeconds), Source: c.Source("primary_timeout_seconds")},
		{Name: "secondary_timeout_seconds", Value: strconv.Itoa(c.SecondaryTimeoutSeconds), Source: c.Source("secondary_timeout_seconds")},
		{Name: "total_timeout_seconds", Value: strconv.Itoa(c.TotalTimeoutSeconds), Source: c.Source("total_timeout_seconds")},
	}
}

// FormatText returns a text representation of the configuration
func (c *GatewayConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *GatewayConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// redactURL masks the password component of a connection URL so it never
// reaches logs or status output.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	at := strings.LastIndex(raw, "@")
	scheme := strings.Index(raw, "://")
	if at == -1 || scheme == -1 || at < scheme {
		return raw
	}
	creds := raw[scheme+3 : at]
	colon := strings.Index(creds, ":")
	if colon == -1 {
		return raw
	}
	return raw[:scheme+3] + creds[:colon] + ":****" + raw[at:]
}
