package util

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	RunModeHTTP  = "http"
	RunModeMCP   = "mcp"
	RunModeBoth  = "both"
	RunModeToken = "token"

	DataSourceFiles    = "files"
	DataSourcePostgres = "postgres"
)

type Config struct {
	Environment        string        `mapstructure:"ENVIRONMENT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	HTTPServerAddress  string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RunMode            string        `mapstructure:"RUN_MODE"`
	DataPath           string        `mapstructure:"DATA_PATH"`
	DataSource         string        `mapstructure:"DATA_SOURCE"`
	DBSource           string        `mapstructure:"DB_SOURCE"`
	MigrationURL       string        `mapstructure:"MIGRATION_URL"`
	RedisAddress       string        `mapstructure:"REDIS_ADDRESS"`
	CacheTTL           time.Duration `mapstructure:"CACHE_TTL"`
	TokenSymmetricKey  string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AdminTokenDuration time.Duration `mapstructure:"ADMIN_TOKEN_DURATION"`
	AllowedOrigins     []string      `mapstructure:"ALLOWED_ORIGINS"`
	MarkupMaxPasses    int           `mapstructure:"MARKUP_MAX_PASSES"`
}

var defaults = map[string]any{
	"ENVIRONMENT":          "production",
	"LOG_LEVEL":            "info",
	"HTTP_SERVER_ADDRESS":  "0.0.0.0:3000",
	"RUN_MODE":             RunModeHTTP,
	"DATA_PATH":            "./data",
	"DATA_SOURCE":          DataSourceFiles,
	"DB_SOURCE":            "",
	"MIGRATION_URL":        "file://db/migration",
	"REDIS_ADDRESS":        "",
	"CACHE_TTL":            "5m",
	"TOKEN_SYMMETRIC_KEY":  "",
	"ADMIN_TOKEN_DURATION": "24h",
	"ALLOWED_ORIGINS":      "*",
	"MARKUP_MAX_PASSES":    0,
}

// LoadConfig reads app.env from path. Environment variables override the file,
// and a missing file leaves the defaults plus the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

// Validate checks the combinations of settings the service cannot start with.
func (config Config) Validate() error {
	return validation.ValidateStruct(&config,
		validation.Field(&config.RunMode,
			validation.Required,
			validation.In(RunModeHTTP, RunModeMCP, RunModeBoth, RunModeToken).
				Error("must be one of http, mcp, both, token")),
		validation.Field(&config.DataSource,
			validation.Required,
			validation.In(DataSourceFiles, DataSourcePostgres).
				Error("must be one of files, postgres")),
		validation.Field(&config.DataPath,
			validation.When(config.DataSource == DataSourceFiles && config.RunMode != RunModeToken, validation.Required)),
		validation.Field(&config.DBSource,
			validation.When(config.DataSource == DataSourcePostgres, validation.Required)),
		validation.Field(&config.MigrationURL,
			validation.When(config.DBSource != "", validation.Required)),
		validation.Field(&config.TokenSymmetricKey,
			validation.When(config.RunMode == RunModeToken, validation.Required),
			validation.Length(32, 0)),
		validation.Field(&config.AdminTokenDuration,
			validation.When(config.RunMode == RunModeToken, validation.Required)),
		validation.Field(&config.CacheTTL, validation.Min(time.Duration(0))),
		validation.Field(&config.MarkupMaxPasses, validation.Min(0)),
		validation.Field(&config.LogLevel, validation.By(isLogLevel)),
		validation.Field(&config.HTTPServerAddress, validation.Required, validation.By(isHostPort)),
	)
}

func isLogLevel(value any) error {
	s, _ := value.(string)
	if _, err := zerolog.ParseLevel(s); err != nil {
		return errors.New("unknown log level")
	}
	return nil
}

func isHostPort(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, _, err := (&Config{HTTPServerAddress: s}).ExtractHostPort(); err != nil {
		return errors.New("must be host:port or a URL")
	}
	return nil
}

// ServesHTTP reports whether the run mode starts the HTTP server.
func (config *Config) ServesHTTP() bool {
	return config.RunMode == RunModeHTTP || config.RunMode == RunModeBoth
}

// ServesMCP reports whether the run mode starts the MCP stdio server.
func (config *Config) ServesMCP() bool {
	return config.RunMode == RunModeMCP || config.RunMode == RunModeBoth
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	urlStr, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host, port = urlStr.Hostname(), urlStr.Port()
	if host == "" {
		err = fmt.Errorf("http server address %q has no host", config.HTTPServerAddress)
	}

	return
}

const defaultPort = "3000"

// ListenAddress is the host:port the HTTP server binds to.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}
	if port == "" {
		port = defaultPort
	}
	return net.JoinHostPort(host, port), nil
}
