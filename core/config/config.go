package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrParse is returned when environment variables cannot be parsed into the target.
	ErrParse = errors.New("config: failed to parse environment")
	// ErrRead is returned when a config file cannot be read or decoded.
	ErrRead = errors.New("config: failed to read file")
	// ErrUnsupportedFormat is returned for config files other than TOML or YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> T
)

func loadDotenv() {
	dotenvOnce.Do(func() {
		// A missing .env file is normal.
		_ = godotenv.Load()
	})
}

// Load fills cfg from environment variables using `env` struct tags.
// A .env file in the working directory is loaded on first use if present.
// Each type is parsed once; later calls for the same type get the cached value.
func Load[T any](cfg *T) error {
	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	var fresh T
	if err := Parse(&fresh); err != nil {
		return err
	}

	actual, _ := cache.LoadOrStore(key, fresh)
	*cfg = actual.(T)
	return nil
}

// Parse fills cfg from the current environment without consulting or updating
// the cache used by Load.
func Parse[T any](cfg *T) error {
	loadDotenv()

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	*cfg = fresh
	return nil
}

// MustLoad is Load that panics on failure. Useful at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// LoadFile decodes a TOML (.toml) or YAML (.yaml, .yml) file into cfg.
// File values are not cached.
func LoadFile[T any](path string, cfg *T) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}
