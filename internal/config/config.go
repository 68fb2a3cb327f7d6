package config

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecarith/pkg/lenstra"
)

const envPrefix = "ECARITH"

// Config holds the factorizer settings shared by the command line tools.
type Config struct {
	Bound     int    `mapstructure:"bound"`
	Workers   int    `mapstructure:"workers"`
	MaxCurves int64  `mapstructure:"max-curves"`
	Seed      int64  `mapstructure:"seed"`
	LogLevel  string `mapstructure:"log-level"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Bound:    lenstra.DefaultBound,
		Workers:  1,
		LogLevel: "info",
	}
}

// RegisterFlags adds the configuration flags to fs, with defaults taken from
// GetDefaultConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	d := GetDefaultConfig()
	fs.Int("bound", d.Bound, "largest multiplier (exclusive) tried on each curve")
	fs.Int("workers", d.Workers, "concurrent factorization workers")
	fs.Int64("max-curves", d.MaxCurves, "stop after this many curves (0 retries forever)")
	fs.Int64("seed", d.Seed, "random seed (0 seeds from the clock)")
	fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
}

// Load reads the configuration. Values come, in increasing precedence, from
// the defaults, the optional config file, ECARITH_* environment variables and
// flags that were set explicitly in fs.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := GetDefaultConfig()
	v.SetDefault("bound", d.Bound)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("max-curves", d.MaxCurves)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log-level", d.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}

	if configPath != "" {
		log.Debugf("ConfigPath=%s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", configPath)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the ranges of the numeric settings and the log level.
func (c *Config) Validate() error {
	if c.Bound < 3 {
		return errors.Errorf("bound must be at least 3, got %d", c.Bound)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxCurves < 0 {
		return errors.Errorf("max-curves must not be negative, got %d", c.MaxCurves)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log-level")
	}
	return nil
}

// FactorizerOptions translates the configuration into lenstra options.
func (c *Config) FactorizerOptions() []lenstra.Option {
	opts := []lenstra.Option{
		lenstra.WithBound(c.Bound),
		lenstra.WithWorkers(c.Workers),
		lenstra.WithMaxCurves(c.MaxCurves),
	}
	if c.Seed != 0 {
		opts = append(opts, lenstra.WithSeed(c.Seed))
	}
	return opts
}

// ApplyLogLevel sets the level of the standard logrus logger.
func (c *Config) ApplyLogLevel() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log-level")
	}
	log.SetLevel(level)
	return nil
}
