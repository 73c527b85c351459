package config

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	iutil "github.com/go-sif/lazyframe/internal/util"
	"github.com/go-sif/lazyframe/logging"
)

// Config configures the execution of lazyframe task graphs
type Config struct {
	// NumWorkers is the maximum number of tasks executed concurrently
	NumWorkers int `validate:"min=1"`
	// FuseLinearChains inlines single-consumer tasks into their consumer before execution
	FuseLinearChains bool
	// CacheSize is the number of task results retained between runs, or 0 to disable caching
	CacheSize int `validate:"min=0"`
	// CompressCache keeps partitions evicted from the cache in an lz4-compressed second tier
	CompressCache bool
	LogLevel      string `validate:"oneof=TRACE DEBUG INFO WARN ERROR FATAL trace debug info warn error fatal"`
	PrettyLogs    bool
}

// Default returns a Config with one worker per CPU, fusion enabled and no result cache
func Default() *Config {
	return &Config{
		NumWorkers:       runtime.NumCPU(),
		FuseLinearChains: true,
		CacheSize:        0,
		CompressCache:    false,
		LogLevel:         "WARN",
		PrettyLogs:       false,
	}
}

// Level returns the logging level named by LogLevel
func (c *Config) Level() int {
	level, err := logging.ParseLogLevel(c.LogLevel)
	if err != nil {
		return logging.WarnLevel
	}
	return level
}

// Validate returns every constraint violated by this Config
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	merr := &multierror.Error{ErrorFormat: iutil.FormatMultiError}
	for _, fe := range verrs {
		merr = multierror.Append(merr, fmt.Errorf("%s: invalid value %v (%s=%s)", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return merr.ErrorOrNil()
}

// Load reads a Config from lazyframe.yaml within configPath, if present, applying
// environment overrides such as LAZYFRAME_NUM_WORKERS on top. Unset values keep
// their defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("lazyframe")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetEnvPrefix("LAZYFRAME")
	v.AutomaticEnv()
	for _, key := range []string{"num_workers", "fuse_linear_chains", "cache_size", "compress_cache", "log_level", "pretty_logs"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("unable to read config from %s: %w", configPath, err)
			}
		}
	}

	if v.IsSet("num_workers") {
		cfg.NumWorkers = v.GetInt("num_workers")
	}
	if v.IsSet("fuse_linear_chains") {
		cfg.FuseLinearChains = v.GetBool("fuse_linear_chains")
	}
	if v.IsSet("cache_size") {
		cfg.CacheSize = v.GetInt("cache_size")
	}
	if v.IsSet("compress_cache") {
		cfg.CompressCache = v.GetBool("compress_cache")
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("pretty_logs") {
		cfg.PrettyLogs = v.GetBool("pretty_logs")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
