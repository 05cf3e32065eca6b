package clickcall

import (
	"fmt"
	"os"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/spf13/viper"
)

// Config is the deployment-level configuration: provider selection, the
// provider's API contract, and ambient options. It is distinct from the
// per-user Settings record, which only carries the PBX connection fields.
type Config struct {
	Dialer    dialers.Config `mapstructure:"dialer"`
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"`
	Notify    NotifyConfig   `mapstructure:"notify"`
	Journal   JournalConfig  `mapstructure:"journal"`
}

type NotifyConfig struct {
	Desktop bool `mapstructure:"desktop"`
}

type JournalConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads config.yaml from dir, falling back to defaults when the
// file does not exist: the utility must work out of the box against a stock
// FusionPBX deployment.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetDefault("dialer.provider", "fusionpbx")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("notify.desktop", true)
	v.SetDefault("journal.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Dialer.Settings = expandSettings(cfg.Dialer.Settings)
	return cfg, nil
}

// expandSettings resolves ${ENV_VAR} references in the free-form provider
// settings, so credentials can stay out of the config file.
func expandSettings(settings map[string]any) map[string]any {
	if settings == nil {
		return nil
	}
	for k, v := range settings {
		settings[k] = expandAny(v)
	}
	return settings
}

func expandAny(v any) any {
	switch val := v.(type) {
	case string:
		return os.ExpandEnv(val)
	case []any:
		for i := range val {
			val[i] = expandAny(val[i])
		}
		return val
	case map[string]any:
		for k, v := range val {
			val[k] = expandAny(v)
		}
		return val
	default:
		return v
	}
}
