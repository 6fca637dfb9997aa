package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"photoorder/internal/logging"
)

const (
	DefaultInputFile = "input"
	DefaultOutputDir = "ordered"
	EnvPrefix        = "PHOTOORDER"
)

// Flag names shared by the commands and the viper keys.
const (
	KeyConfig   = "config"
	KeyInput    = "input"
	KeyOutput   = "output"
	KeyStatsDir = "dir"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log-level"
	KeyTUI      = "tui"
)

type Config struct {
	ConfigFile string `mapstructure:"config"`
	InputFile  string `mapstructure:"input"`
	OutputDir  string `mapstructure:"output"`
	StatsDir   string `mapstructure:"dir"`
	Verbose    bool   `mapstructure:"verbose"`
	LogLevel   string `mapstructure:"log-level"`
	TUI        bool   `mapstructure:"tui"`
}

// Load resolves the configuration for one command invocation. A flag the
// user set wins over PHOTOORDER_* environment variables, which win over
// the optional config file, which wins over the defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.InputFile = strings.TrimSpace(cfg.InputFile)
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	cfg.StatsDir = strings.TrimSpace(cfg.StatsDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, DefaultInputFile)
	v.SetDefault(KeyOutput, DefaultOutputDir)
	v.SetDefault(KeyStatsDir, DefaultOutputDir)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTUI, false)
}

func (c Config) Validate() error {
	if c.InputFile == "" {
		return errors.New("input file must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if c.StatsDir == "" {
		return errors.New("stats directory must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
