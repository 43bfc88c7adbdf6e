package language_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10n/core/language"
)

func TestRegistryDefaults(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()

	assert.False(t, r.IsConfigured())
	assert.Equal(t, []string{"en"}, r.Supported())
	assert.Equal(t, "en", r.First())
	assert.Equal(t, "en", r.Primary())
	assert.Empty(t, r.Optional())
}

func TestRegistryConfigure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		required  []string
		optional  []string
		supported []string
	}{
		{
			name:      "union keeps required first",
			required:  []string{"en", "pt"},
			optional:  []string{"es"},
			supported: []string{"en", "pt", "es"},
		},
		{
			name:      "overlap is collapsed",
			required:  []string{"en", "pt"},
			optional:  []string{"pt", "es"},
			supported: []string{"en", "pt", "es"},
		},
		{
			name:      "case insensitive duplicates keep first spelling",
			required:  []string{"EN", "pt"},
			optional:  []string{"en", "Es", "es"},
			supported: []string{"EN", "pt", "Es"},
		},
		{
			name:      "blank codes are ignored",
			required:  []string{" ", "pt"},
			optional:  []string{""},
			supported: []string{"pt"},
		},
		{
			name:      "empty configuration falls back to primary",
			required:  nil,
			optional:  nil,
			supported: []string{"en"},
		},
		{
			name:      "first is not necessarily primary",
			required:  []string{"de"},
			optional:  []string{"en"},
			supported: []string{"de", "en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := language.NewRegistry()
			r.Configure(tt.required, tt.optional)

			assert.True(t, r.IsConfigured())
			assert.Equal(t, tt.supported, r.Supported())
			assert.Equal(t, tt.supported[0], r.First())
		})
	}
}

func TestRegistryContains(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()
	r.Configure([]string{"en", "pt"}, []string{"es"})

	assert.True(t, r.Contains("pt"))
	assert.True(t, r.Contains("PT"))
	assert.True(t, r.Contains(" es "))
	assert.False(t, r.Contains("xx"))
	assert.False(t, r.Contains(""))

	code, ok := r.Canonical("ES")
	require.True(t, ok)
	assert.Equal(t, "es", code)
}

func TestRegistryReconfigureReplaces(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()
	r.Configure([]string{"en", "pt"}, []string{"es"})
	r.Configure([]string{"de"}, nil)

	assert.Equal(t, []string{"de"}, r.Supported())
	assert.Equal(t, []string{"de"}, r.Required())
	assert.Empty(t, r.Optional())
}

func TestRegistrySupportedIsACopy(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()
	r.Configure([]string{"en", "pt"}, nil)

	s := r.Supported()
	s[0] = "xx"

	assert.Equal(t, []string{"en", "pt"}, r.Supported())
}

func TestRegistryConcurrentConfigure(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()
	a := []string{"en", "pt"}
	b := []string{"de", "fr"}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Configure(a, nil)
			} else {
				r.Configure(b, nil)
			}
		}()
		go func() {
			defer wg.Done()
			s := r.Supported()
			if len(s) == 1 {
				// default snapshot before any Configure landed
				assert.Equal(t, []string{"en"}, s)
				return
			}
			if s[0] == "en" {
				assert.Equal(t, a, s)
			} else {
				assert.Equal(t, b, s)
			}
		}()
	}
	wg.Wait()
}

func TestRegistryMatch(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()
	r.Configure([]string{"en", "pt"}, []string{"es"})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty header", header: "", want: ""},
		{name: "exact", header: "pt", want: "pt"},
		{name: "regional variant", header: "pt-BR", want: "pt"},
		{name: "quality order", header: "es;q=0.9,pt;q=0.5", want: "es"},
		{name: "skips unsupported", header: "ja,es;q=0.8", want: "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Match(tt.header))
		})
	}
}

func TestRegistryConfigureFrom(t *testing.T) {
	t.Parallel()

	r := language.NewRegistry()
	r.ConfigureFrom(language.Config{Required: []string{"en"}, Optional: []string{"sw"}})

	assert.Equal(t, []string{"en", "sw"}, r.Supported())
}
