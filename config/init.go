package config

import (
	"errors"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance *Config

// Init loads config.yaml (if present) and overlays GUD_* environment
// variables. Must be called before Get.
func Init() {
	cfg := &Config{
		Host: "0.0.0.0",
		Port: "8080",
		Mode: ModeDebug,
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		// config file is optional, env alone is a valid setup
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	} else if err := v.Unmarshal(cfg); err != nil {
		panic(err)
	}

	if err := envconfig.Process("GUD", cfg); err != nil {
		panic(err)
	}

	cfg.Mode = Mode(strings.ToLower(string(cfg.Mode)))
	if cfg.Mode != ModeRelease {
		cfg.Mode = ModeDebug
	}

	instance = cfg
}

// Get returns the loaded config. Panics if Init was not called.
func Get() *Config {
	if instance == nil {
		panic("config: Get called before Init")
	}
	return instance
}
