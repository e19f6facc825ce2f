// Package config loads runtime settings for the crucigrama binary from
// defaults, an optional crucigrama.yaml, and CRUCIGRAMA_* environment
// variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	WordsPath  string
	Difficulty string
	LogLevel   string
	Workers    int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("words-path", "./data/words.yaml")
	v.SetDefault("difficulty", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("workers", 0)

	v.SetConfigName("crucigrama")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("crucigrama")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no config file is fine; defaults and env cover everything
	}

	return &Config{
		WordsPath:  v.GetString("words-path"),
		Difficulty: v.GetString("difficulty"),
		LogLevel:   v.GetString("log-level"),
		Workers:    v.GetInt("workers"),
	}, nil
}
