// Package config provides type-safe configuration loading using Go generics.
//
// Environment variables are parsed with caarlos0/env. Each configuration type is
// loaded once and cached for subsequent calls, and a .env file is loaded on first use.
//
//	import "github.com/dmitrymomot/l10n/core/config"
//
//	type LanguageConfig struct {
//		Required []string `env:"L10N_REQUIRED_LANGUAGES" envSeparator:"," envDefault:"en"`
//		Optional []string `env:"L10N_OPTIONAL_LANGUAGES" envSeparator:","`
//	}
//
//	var cfg LanguageConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 LanguageConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 LanguageConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// # Files
//
// LoadFile reads TOML or YAML, chosen by file extension, using the `toml` and `yaml`
// struct tags. File values are not cached.
//
//	config.LoadFile("languages.toml", &cfg)
package config
