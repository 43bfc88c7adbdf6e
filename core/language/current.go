package language

import (
	"context"
	"os"
	"strings"
	"sync/atomic"

	textlang "golang.org/x/text/language"
)

// languageContextKey is used as a key for storing the caller's language in a context.
type languageContextKey struct{}

// ToContext returns a copy of ctx carrying the given language code.
func ToContext(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, code)
}

// FromContext extracts the language code stored by ToContext.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	code, ok := ctx.Value(languageContextKey{}).(string)
	if !ok || strings.TrimSpace(code) == "" {
		return "", false
	}
	return code, true
}

var current atomic.Value

func init() {
	current.Store(fromEnvironment())
}

// Current returns the process-wide ambient language code.
// Until SetCurrent is called it is derived from LC_ALL, LC_MESSAGES or LANG.
func Current() string {
	return current.Load().(string)
}

// SetCurrent sets the process-wide ambient language.
// The code is reduced to its base language, so "pt-BR" becomes "pt".
// A blank code resets it to Primary.
func SetCurrent(code string) {
	b := Base(code)
	if b == "" {
		b = strings.TrimSpace(code)
	}
	if b == "" {
		b = Primary
	}
	current.Store(b)
}

// Resolve returns the language the caller wants right now: the context value,
// then the process-wide current language, then Primary. It is never blank.
func Resolve(ctx context.Context) string {
	if code, ok := FromContext(ctx); ok {
		return code
	}
	if code := Current(); code != "" {
		return code
	}
	return Primary
}

// Base returns the two-letter base language of a BCP 47 tag or a POSIX locale
// name such as "pt_BR.UTF-8". It returns "" when nothing can be parsed.
func Base(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	if code == "" || strings.EqualFold(code, "C") || strings.EqualFold(code, "POSIX") {
		return ""
	}
	tag, err := textlang.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == textlang.No {
		return ""
	}
	return base.String()
}

func fromEnvironment() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if b := Base(os.Getenv(key)); b != "" {
			return b
		}
	}
	return Primary
}

// Match picks the supported code that best satisfies an HTTP Accept-Language header.
// It returns "" if the header cannot be parsed or nothing matches.
func (r *Registry) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return ""
	}
	desired, _, err := textlang.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return ""
	}

	supported := r.Supported()
	tags := make([]textlang.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := textlang.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return ""
	}

	_, index, conf := textlang.NewMatcher(tags).Match(desired...)
	if conf == textlang.No || index < 0 || index >= len(codes) {
		return ""
	}
	return codes[index]
}
