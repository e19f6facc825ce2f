package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.WordsPath, "./data/words.yaml")
	is.Equal(cfg.LogLevel, "info")
	is.Equal(cfg.Workers, 0)
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("CRUCIGRAMA_DIFFICULTY", "avanzado")
	t.Setenv("CRUCIGRAMA_LOG_LEVEL", "debug")
	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.Difficulty, "avanzado")
	is.Equal(cfg.LogLevel, "debug")
}
