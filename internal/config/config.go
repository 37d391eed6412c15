package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// GinMode is passed to gin.SetMode; empty keeps gin's default.
	GinMode string

	// MaxAlphabet caps the number of symbols in one codebook.
	MaxAlphabet int

	// MaxMessage caps the length of messages and bit strings accepted by
	// the encode and decode endpoints.
	MaxMessage int
}

const (
	defaultPort        = "8080"
	defaultMaxAlphabet = 256
	defaultMaxMessage  = 1 << 20
)

// Load reads the configuration from HUFFCODE_* environment variables,
// falling back to defaults for unset ones.  Malformed values are an error.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        defaultPort,
		GinMode:     getenv("HUFFCODE_GIN_MODE"),
		MaxAlphabet: defaultMaxAlphabet,
		MaxMessage:  defaultMaxMessage,
	}
	if v := getenv("HUFFCODE_PORT"); v != "" {
		cfg.Port = v
	}

	var err error
	if cfg.MaxAlphabet, err = positiveInt(getenv, "HUFFCODE_MAX_ALPHABET", cfg.MaxAlphabet); err != nil {
		return Config{}, err
	}
	if cfg.MaxMessage, err = positiveInt(getenv, "HUFFCODE_MAX_MESSAGE", cfg.MaxMessage); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s: must be positive, got %d", key, n)
	}
	return n, nil
}
