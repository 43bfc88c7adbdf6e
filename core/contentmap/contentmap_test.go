package contentmap_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10n/core/contentmap"
	"github.com/dmitrymomot/l10n/core/language"
)

func newCodec(required, optional []string) *contentmap.Codec {
	r := language.NewRegistry()
	r.Configure(required, optional)
	return contentmap.New(r)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	codec := newCodec([]string{"en", "pt"}, []string{"es"})

	tests := []struct {
		name string
		in   contentmap.Map
		want string
	}{
		{
			name: "all supported in registry order",
			in:   contentmap.Map{"es": "Coche", "pt": "Carro", "en": "Car"},
			want: `{"en":"Car","pt":"Carro","es":"Coche"}`,
		},
		{
			name: "unsupported keys are dropped",
			in:   contentmap.Map{"en": "Car", "fr": "Voiture"},
			want: `{"en":"Car"}`,
		},
		{
			name: "keys use registry spelling",
			in:   contentmap.Map{"PT": "Carro"},
			want: `{"pt":"Carro"}`,
		},
		{
			name: "empty map",
			in:   contentmap.Map{},
			want: `{}`,
		},
		{
			name: "nil map",
			in:   nil,
			want: `{}`,
		},
		{
			name: "case duplicates pick the smallest key",
			in:   contentmap.Map{"Pt": "a", "PT": "b"},
			want: `{"pt":"b"}`,
		},
		{
			name: "invalid utf-8 is replaced",
			in:   contentmap.Map{"en": "a\xffb"},
			want: `{"en":"a\ufffdb"}`,
		},
		{
			name: "special characters are escaped but html is kept",
			in:   contentmap.Map{"en": `Say "hi" <b>&</b>` + "\n"},
			want: `{"en":"Say \"hi\" <b>&</b>\n"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, codec.Encode(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	codec := newCodec([]string{"en", "pt"}, []string{"es"})

	t.Run("full map", func(t *testing.T) {
		t.Parallel()
		m, err := codec.Decode(`{"en":"Car","pt":"Carro","es":"Coche"}`)
		require.NoError(t, err)
		assert.Equal(t, contentmap.Map{"en": "Car", "pt": "Carro", "es": "Coche"}, m)
	})

	t.Run("drops unsupported keys", func(t *testing.T) {
		t.Parallel()
		m, err := codec.Decode(`{"en":"Car","fr":"Voiture"}`)
		require.NoError(t, err)
		assert.Equal(t, contentmap.Map{"en": "Car"}, m)
	})

	t.Run("canonicalizes key case", func(t *testing.T) {
		t.Parallel()
		m, err := codec.Decode(`{"EN":"Car"}`)
		require.NoError(t, err)
		assert.Equal(t, contentmap.Map{"en": "Car"}, m)
	})

	t.Run("exact spelling wins over case duplicate", func(t *testing.T) {
		t.Parallel()
		m, err := codec.Decode(`{"EN":"upper","en":"lower"}`)
		require.NoError(t, err)
		assert.Equal(t, contentmap.Map{"en": "lower"}, m)
	})

	t.Run("case duplicates pick the smallest key", func(t *testing.T) {
		t.Parallel()
		for range 50 {
			m, err := codec.Decode(`{"Pt":"a","PT":"b","pT":"c"}`)
			require.NoError(t, err)
			assert.Equal(t, contentmap.Map{"pt": "b"}, m)
		}
	})

	t.Run("null is empty", func(t *testing.T) {
		t.Parallel()
		m, err := codec.Decode(`null`)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	for _, text := range []string{"Car", "", `{"en":`, `["en"]`, `{"en":1}`, `"Car"`} {
		t.Run("malformed "+text, func(t *testing.T) {
			t.Parallel()
			_, err := codec.Decode(text)
			assert.ErrorIs(t, err, contentmap.ErrMalformed)
		})
	}
}

func TestTryDecode(t *testing.T) {
	t.Parallel()

	codec := newCodec([]string{"pt", "en"}, nil)

	m, ok := codec.TryDecode("not json at all")
	assert.False(t, ok)
	assert.Equal(t, contentmap.Map{"pt": ""}, m)

	m, ok = codec.TryDecode(`{"en":"Car"}`)
	assert.True(t, ok)
	assert.Equal(t, contentmap.Map{"en": "Car"}, m)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	m := contentmap.Map{"en": "Car", "PT": "Carro"}

	v, ok := m.Lookup("en")
	assert.True(t, ok)
	assert.Equal(t, "Car", v)

	v, ok = m.Lookup("pt")
	assert.True(t, ok)
	assert.Equal(t, "Carro", v)

	_, ok = m.Lookup("es")
	assert.False(t, ok)

	dup := contentmap.Map{"Pt": "a", "PT": "b", "pT": "c"}
	for range 50 {
		v, ok = dup.Lookup("pt")
		assert.True(t, ok)
		assert.Equal(t, "b", v)
	}
}

func TestRoundTripProperties(t *testing.T) {
	t.Parallel()

	codec := newCodec([]string{"en", "pt"}, []string{"es"})

	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	keys := gen.OneConstOf("en", "pt", "es", "fr", "de", "ja")

	properties.Property("decode(encode(m)) is the supported subset of m", prop.ForAll(
		func(m map[string]string) bool {
			got, err := codec.Decode(codec.Encode(m))
			if err != nil {
				return false
			}
			want := contentmap.Map{}
			for k, v := range m {
				if codec.Registry().Contains(k) {
					want[k] = v
				}
			}
			if len(got) != len(want) {
				return false
			}
			for k, v := range want {
				if got[k] != v {
					return false
				}
			}
			return true
		},
		gen.MapOf(keys, gen.AlphaString()),
	))

	properties.Property("encode never emits unsupported keys", prop.ForAll(
		func(v string) bool {
			return codec.Encode(contentmap.Map{"fr": v, "ja": v}) == "{}"
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// The package-level helpers use the process-wide registry, so they are not parallel.
func TestSerializeDeserialize(t *testing.T) {
	r := language.Default()
	prevRequired, prevOptional := r.Required(), r.Optional()
	t.Cleanup(func() { r.Configure(prevRequired, prevOptional) })

	language.Configure([]string{"en", "pt"}, []string{"es"})

	text := contentmap.Serialize(contentmap.Map{"en": "Car", "pt": "Carro", "es": "Coche"})
	assert.Equal(t, `{"en":"Car","pt":"Carro","es":"Coche"}`, text)

	m, err := contentmap.Deserialize(text)
	require.NoError(t, err)
	assert.Equal(t, contentmap.Map{"en": "Car", "pt": "Carro", "es": "Coche"}, m)

	m, ok := contentmap.TryDeserialize("{broken")
	assert.False(t, ok)
	assert.Equal(t, contentmap.Map{"en": ""}, m)
}
