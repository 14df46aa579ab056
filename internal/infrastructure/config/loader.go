package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. SA_SERVER_PORT
const EnvPrefix = "SA"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configs/<env>.yaml, then applies .env and SA_* overrides.
// A missing config file is not an error; defaults cover every setting.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override file values
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found; existing variables win
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, benchmarks can be slow
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", false)
	v.SetDefault("logger.maxSizeMB", 100)
	v.SetDefault("logger.maxBackups", 3)
	v.SetDefault("logger.maxAgeDays", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("analytics.defaultTopCustomers", 10)
	v.SetDefault("analytics.benchmarkRecords", 50000)
	v.SetDefault("analytics.benchmarkRounds", 5)
	v.SetDefault("analytics.benchmarkTopN", 10)
	v.SetDefault("analytics.benchmarkMaxRecords", 2000000)
	v.SetDefault("analytics.benchmarkSeed", 42)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from SA_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts the raw second counts into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
}

// Validate reports every missing or invalid setting at once
func (c *Config) Validate() error {
	var problems []string

	switch c.Environment {
	case Development, Production, Test:
	default:
		problems = append(problems, fmt.Sprintf("environment must be one of %s, %s, %s (got %q)",
			Development, Production, Test, c.Environment))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port")
	}
	if c.Server.ReadTimeout <= 0 {
		problems = append(problems, "server.readTimeout")
	}
	if c.Server.WriteTimeout <= 0 {
		problems = append(problems, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server.shutdownTimeout")
	}
	if c.Logger.Level == "" {
		problems = append(problems, "logger.level")
	}
	if c.Analytics.DefaultTopCustomers <= 0 {
		problems = append(problems, "analytics.defaultTopCustomers")
	}
	if c.Analytics.BenchmarkRecords <= 0 {
		problems = append(problems, "analytics.benchmarkRecords")
	}
	if c.Analytics.BenchmarkRounds <= 0 {
		problems = append(problems, "analytics.benchmarkRounds")
	}
	if c.Analytics.BenchmarkTopN <= 0 {
		problems = append(problems, "analytics.benchmarkTopN")
	}
	if c.Analytics.BenchmarkMaxRecords < c.Analytics.BenchmarkRecords {
		problems = append(problems, "analytics.benchmarkMaxRecords must be >= analytics.benchmarkRecords")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}
