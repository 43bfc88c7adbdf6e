// Package language holds the configured set of language codes and the ambient
// "current language" used when a caller does not pass one explicitly.
//
// A Registry keeps two lists, required and optional. Their union, in that order and
// deduplicated without regard to case, is the supported set. The first supported code
// is the ultimate fallback for content resolution. Before Configure is called the
// supported set is just Primary ("en"), so callers never see an empty set.
//
//	import "github.com/dmitrymomot/l10n/core/language"
//
//	language.Configure([]string{"en", "pt"}, []string{"es"})
//	language.Supported()   // [en pt es]
//	language.Default().First() // en
//
// Configure replaces the whole configuration in one atomic step. Concurrent readers
// observe either the old or the new pair of lists, never a mix.
//
// # Current Language
//
// Resolve returns the language for the current call: a code placed in the context with
// ToContext wins, then the process-wide value set with SetCurrent (initialized from
// LC_ALL, LC_MESSAGES or LANG), then Primary.
//
//	ctx := language.ToContext(r.Context(), "pt")
//	language.Resolve(ctx) // pt
//
// Registry.Match maps an HTTP Accept-Language header onto the supported set using
// golang.org/x/text/language matching.
package language
