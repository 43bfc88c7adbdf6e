package l10n

import (
	"context"
	"iter"

	"github.com/dmitrymomot/l10n/core/config"
	"github.com/dmitrymomot/l10n/core/contentmap"
	"github.com/dmitrymomot/l10n/core/language"
	"github.com/dmitrymomot/l10n/core/localizer"
)

// Map is a language content map: language code to text.
type Map = contentmap.Map

// Depth controls how far localization follows nested members.
type Depth = localizer.Depth

const (
	Shallow  = localizer.Shallow
	OneLevel = localizer.OneLevel
	Deep     = localizer.Deep
)

// Configure replaces the process-wide language lists.
func Configure(required, optional []string) {
	language.Configure(required, optional)
}

// ConfigureFromEnv configures the process-wide registry from
// L10N_REQUIRED_LANGUAGES and L10N_OPTIONAL_LANGUAGES (comma separated).
// The environment is read on every call.
func ConfigureFromEnv() error {
	var cfg language.Config
	if err := config.Parse(&cfg); err != nil {
		return err
	}
	language.Default().ConfigureFrom(cfg)
	return nil
}

// ConfigureFromFile configures the process-wide registry from a TOML or YAML file
// with `required` and `optional` lists.
func ConfigureFromFile(path string) error {
	var cfg language.Config
	if err := config.LoadFile(path, &cfg); err != nil {
		return err
	}
	language.Default().ConfigureFrom(cfg)
	return nil
}

// Supported returns the process-wide supported languages, required first.
func Supported() []string {
	return language.Supported()
}

// IsConfigured reports whether Configure has been called.
func IsConfigured() bool {
	return language.IsConfigured()
}

// Serialize encodes m with the process-wide registry.
func Serialize(m Map) string {
	return contentmap.Serialize(m)
}

// Deserialize decodes text with the process-wide registry.
func Deserialize(text string) (Map, error) {
	return contentmap.Deserialize(text)
}

// TryDeserialize decodes text, returning a single empty entry for the first
// supported language and false when text is not a content map.
func TryDeserialize(text string) (Map, bool) {
	return contentmap.TryDeserialize(text)
}

// Localize resolves every localizable member of item in place for code.
func Localize[T any](item T, code string, depth Depth) (T, error) {
	return localizer.Localize(item, code, depth)
}

// LocalizeContext is Localize for the language carried by ctx,
// falling back to the process language.
func LocalizeContext[T any](ctx context.Context, item T, depth Depth) (T, error) {
	return localizer.LocalizeContext(ctx, item, depth)
}

// LocalizeSeq lazily localizes each element of items.
func LocalizeSeq[T any](items iter.Seq[T], code string, depth Depth) iter.Seq2[T, error] {
	return localizer.LocalizeSeq(items, code, depth)
}

// LocalizeAll localizes every element of items.
func LocalizeAll[T any](items []T, code string, depth Depth) error {
	return localizer.LocalizeAll(items, code, depth)
}

// WithLanguage returns a copy of ctx carrying code for LocalizeContext.
func WithLanguage(ctx context.Context, code string) context.Context {
	return language.ToContext(ctx, code)
}
