package localizer

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/l10n/core/language"
)

// Option configures a Localizer.
type Option func(*Localizer)

// WithRegistry sets the language registry. A nil registry is ignored.
func WithRegistry(r *language.Registry) Option {
	return func(l *Localizer) {
		if r != nil {
			l.registry = r
		}
	}
}

// WithTypeCache sets the type metadata cache. A nil cache is ignored.
func WithTypeCache(c *TypeCache) Option {
	return func(l *Localizer) {
		if c != nil {
			l.types = c
		}
	}
}

// WithLogger sets the logger for skipped objects and failed fields.
func WithLogger(log *slog.Logger) Option {
	return func(l *Localizer) {
		l.logger = log
	}
}

// WithLanguageSource sets how LocalizeContext finds the caller's language.
// A blank result falls back to language.Primary.
func WithLanguageSource(fn func(context.Context) string) Option {
	return func(l *Localizer) {
		if fn != nil {
			l.source = fn
		}
	}
}
