package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/l10n/core/language"
)

// LanguageConfig configures the language middleware.
type LanguageConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Registry is the set of languages requests are matched against
	// Default: language.Default()
	Registry *language.Registry
	// QueryParam names the query parameter that overrides Accept-Language
	// Default: "lang"; set to "-" to disable
	QueryParam string
	// LanguageExtractor replaces the default query/header extraction
	// Blank or unsupported results fall back to the registry's first supported language
	LanguageExtractor func(r *http.Request) string
	// SetContentLanguage writes the chosen code to the Content-Language response header
	SetContentLanguage bool
}

// Language creates a middleware that negotiates the request language with default configuration.
// It prefers the "lang" query parameter, then Accept-Language, then the first supported language.
func Language() func(http.Handler) http.Handler {
	return LanguageWithConfig(LanguageConfig{})
}

// LanguageWithConfig creates a language middleware with custom configuration.
// The chosen code is stored in the request context, where language.Resolve and
// localizer.LocalizeContext pick it up.
func LanguageWithConfig(cfg LanguageConfig) func(http.Handler) http.Handler {
	if cfg.Registry == nil {
		cfg.Registry = language.Default()
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(r *http.Request) string {
			if cfg.QueryParam != "-" {
				if code, ok := cfg.Registry.Canonical(r.URL.Query().Get(cfg.QueryParam)); ok {
					return code
				}
			}
			return cfg.Registry.Match(r.Header.Get("Accept-Language"))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			code, ok := cfg.Registry.Canonical(cfg.LanguageExtractor(r))
			if !ok {
				code = cfg.Registry.First()
			}

			if cfg.SetContentLanguage {
				w.Header().Set("Content-Language", code)
			}

			next.ServeHTTP(w, r.WithContext(language.ToContext(r.Context(), code)))
		})
	}
}

// GetLanguage retrieves the language chosen by the middleware.
// Works with any context.Context.
func GetLanguage(ctx context.Context) (string, bool) {
	return language.FromContext(ctx)
}
