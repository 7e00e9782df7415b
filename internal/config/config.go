// Package config reads the server settings from the environment, loading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	TLSCert   string
	TLSKey    string
	RateLimit float64
	RateBurst int
	Debug     bool
	// Defaults fill the options a request leaves unset. A nil DrillSets
	// keeps each standard's own defaults.
	Defaults  calc.Options
}

func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads .env files (missing files are ignored) and then the process
// environment. Variables already set win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any variable source.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Addr:    get("THREADS_ADDR", ":8080"),
		TLSCert: get("THREADS_TLS_CERT", ""),
		TLSKey:  get("THREADS_TLS_KEY", ""),
	}
	var err error

	if cfg.RateLimit, err = strconv.ParseFloat(get("THREADS_RATE_LIMIT", "5"), 64); err != nil || !(cfg.RateLimit > 0) {
		return Config{}, invalid("THREADS_RATE_LIMIT", get("THREADS_RATE_LIMIT", ""))
	}
	if cfg.RateBurst, err = strconv.Atoi(get("THREADS_RATE_BURST", "10")); err != nil || cfg.RateBurst < 1 {
		return Config{}, invalid("THREADS_RATE_BURST", get("THREADS_RATE_BURST", ""))
	}
	if cfg.Debug, err = strconv.ParseBool(get("THREADS_DEBUG", "false")); err != nil {
		return Config{}, invalid("THREADS_DEBUG", get("THREADS_DEBUG", ""))
	}
	if cfg.Defaults.Material, err = thread.ParseMaterial(get("THREADS_MATERIAL", "")); err != nil {
		return Config{}, fmt.Errorf("config: THREADS_MATERIAL: %w", err)
	}
	if s, ok := lookup("THREADS_DRILL_SETS"); ok {
		if cfg.Defaults.DrillSets, err = drill.ParseKinds(strings.Split(s, ",")); err != nil {
			return Config{}, fmt.Errorf("config: THREADS_DRILL_SETS: %w", err)
		}
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, errors.New("config: THREADS_TLS_CERT and THREADS_TLS_KEY must be set together")
	}
	return cfg, nil
}

func invalid(key, value string) error {
	return fmt.Errorf("config: %s: %w: %q", key, thread.ErrInvalidInput, value)
}
