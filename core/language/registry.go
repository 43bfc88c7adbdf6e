package language

import (
	"slices"
	"strings"
	"sync/atomic"
)

// Primary is the fallback language code used when nothing else resolves.
const Primary = "en"

// snapshot is an immutable view of the registry configuration.
// Configure swaps the whole snapshot so readers never see a half-updated pair.
type snapshot struct {
	required   []string
	optional   []string
	supported  []string
	configured bool
}

// Registry holds the configured required and optional language codes.
// It is safe for concurrent use; reads are lock-free.
type Registry struct {
	state atomic.Pointer[snapshot]
}

// NewRegistry creates a registry whose only supported language is Primary.
func NewRegistry() *Registry {
	r := &Registry{}
	r.state.Store(newSnapshot([]string{Primary}, nil, false))
	return r
}

func newSnapshot(required, optional []string, configured bool) *snapshot {
	s := &snapshot{
		required:   normalize(required),
		optional:   normalize(optional),
		configured: configured,
	}
	s.supported = union(s.required, s.optional)
	if len(s.supported) == 0 {
		s.supported = []string{Primary}
	}
	return s
}

// Configure replaces both language sets at once and marks the registry as configured.
// Codes are not validated; duplicates and overlaps are tolerated.
func (r *Registry) Configure(required, optional []string) {
	r.state.Store(newSnapshot(required, optional, true))
}

// ConfigureFrom applies a Config loaded from env or file.
func (r *Registry) ConfigureFrom(cfg Config) {
	r.Configure(cfg.Required, cfg.Optional)
}

func (r *Registry) load() *snapshot {
	return r.state.Load()
}

// IsConfigured reports whether Configure has been called at least once.
func (r *Registry) IsConfigured() bool {
	return r.load().configured
}

// Primary returns the constant fallback language code.
func (r *Registry) Primary() string {
	return Primary
}

// Required returns a copy of the required language codes.
func (r *Registry) Required() []string {
	return slices.Clone(r.load().required)
}

// Optional returns a copy of the optional language codes.
func (r *Registry) Optional() []string {
	return slices.Clone(r.load().optional)
}

// Supported returns required ∪ optional in registry order: required codes first,
// then optional ones, deduplicated case-insensitively. The result is never empty.
func (r *Registry) Supported() []string {
	return slices.Clone(r.load().supported)
}

// First returns the first supported language code.
func (r *Registry) First() string {
	return r.load().supported[0]
}

// Contains reports whether code is supported, ignoring case.
func (r *Registry) Contains(code string) bool {
	_, ok := r.Canonical(code)
	return ok
}

// Canonical returns the registry spelling of code if it is supported.
func (r *Registry) Canonical(code string) (string, bool) {
	return lookup(r.load().supported, code)
}

func lookup(codes []string, code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return c, true
		}
	}
	return "", false
}

// normalize trims codes, drops blanks and collapses case-insensitive duplicates.
func normalize(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := lookup(out, c); dup {
			continue
		}
		out = append(out, c)
	}
	return out
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	for _, c := range b {
		if _, dup := lookup(out, c); !dup {
			out = append(out, c)
		}
	}
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Configure replaces the language sets of the process-wide registry.
func Configure(required, optional []string) {
	defaultRegistry.Configure(required, optional)
}

// Supported returns the supported codes of the process-wide registry.
func Supported() []string {
	return defaultRegistry.Supported()
}

// IsConfigured reports whether the process-wide registry has been configured.
func IsConfigured() bool {
	return defaultRegistry.IsConfigured()
}
