package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return LoadWith(viper.GetViper())
}

// LoadWith loads configuration using the given viper instance. Tests use
// this with viper.New() to avoid global state.
func LoadWith(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings. SetConfigName resets an explicitly chosen
	// config file, so only set up the search path when none was chosen.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("sitenav")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (SITENAV_*)
	v.SetEnvPrefix("SITENAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
