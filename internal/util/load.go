package util

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix scopes the dashboard's own environment variables.
const EnvPrefix = "GEMDASH"

// Defaults are applied before the config file, environment and flags.
var Defaults = map[string]any{
	"env_file": ".env.local",
	"addr":     "127.0.0.1:5555",
	"theme":    "gembooth",
	"verbose":  false,
	"cors":     false,
	"log_file": "",
	"plain":    false,
}

// LoadConfig merges defaults, an optional gemdash.yaml (or the explicit file),
// GEMDASH_* variables and flags, in increasing precedence.
func LoadConfig(flags *pflag.FlagSet, configFile string) (Config, error) {
	var cfg Config
	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("gemdash")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read config")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := Defaults[key]; known {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return cfg, errors.Wrap(bindErr, "bind flags")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
