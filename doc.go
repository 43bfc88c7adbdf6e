// Package l10n resolves multi-language text stored inline on struct fields into the
// text for one target language.
//
// At rest a localizable field holds a serialized content map such as
// {"en":"Car","pt":"Carro"}. Localization rewrites the field in place with the
// resolved text, falling back to the first supported language and then to any
// entry when the requested language has no text.
//
// # Package Organization
//
//	github.com/dmitrymomot/l10n/core/language   - Supported languages registry, ambient language, Accept-Language matching
//	github.com/dmitrymomot/l10n/core/contentmap - Content map encoding and decoding
//	github.com/dmitrymomot/l10n/core/localizer  - Reflection-driven in-place localization with depth control
//	github.com/dmitrymomot/l10n/core/config     - Environment, TOML and YAML configuration loading
//	github.com/dmitrymomot/l10n/core/logger     - Structured logging built on slog
//	github.com/dmitrymomot/l10n/middleware      - HTTP language negotiation into the request context
//	github.com/dmitrymomot/l10n/pkg/culture     - Currency and number formatting per language
//	github.com/dmitrymomot/l10n/cmd/l10n        - Command line tool over the codec and resolver
//
// # Example Usage
//
//	type Product struct {
//		Name     string    `localize:"text"`
//		Category *Category
//	}
//
//	l10n.Configure([]string{"en", "pt"}, []string{"es"})
//
//	p := &Product{Name: l10n.Serialize(l10n.Map{"en": "Car", "pt": "Carro"})}
//	if _, err := l10n.Localize(p, "pt", l10n.OneLevel); err != nil {
//		log.Println(err)
//	}
//	// p.Name == "Carro"
//
// The package-level functions share one registry, one type metadata cache and one
// localizer. Use the core packages directly for isolated instances.
package l10n
