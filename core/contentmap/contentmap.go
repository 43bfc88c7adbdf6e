package contentmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/l10n/core/language"
)

// Map maps a language code to text for one localizable value.
type Map map[string]string

// Lookup returns the text for code, matching the exact key first and then ignoring case.
// Among keys differing only in case, the smallest one wins.
func (m Map) Lookup(code string) (string, bool) {
	if v, ok := m[code]; ok {
		return v, true
	}
	var (
		best  string
		found bool
	)
	for k := range m {
		if strings.EqualFold(k, code) && (!found || k < best) {
			best, found = k, true
		}
	}
	if !found {
		return "", false
	}
	return m[best], true
}

// Codec converts content maps to and from their JSON wire form.
// Only languages supported by the registry survive either direction.
type Codec struct {
	registry *language.Registry
}

// New creates a codec bound to the given registry.
// A nil registry means the process-wide default.
func New(registry *language.Registry) *Codec {
	if registry == nil {
		registry = language.Default()
	}
	return &Codec{registry: registry}
}

// Registry returns the registry the codec filters against.
func (c *Codec) Registry() *language.Registry {
	return c.registry
}

// Encode serializes m as a flat JSON object. Entries are emitted only for supported
// languages, in the registry's supported order and spelling.
// Invalid UTF-8 in text is written as U+FFFD, so such text does not survive a round trip.
func (c *Codec) Encode(m Map) string {
	var buf bytes.Buffer
	buf.WriteByte('{')

	written := 0
	for _, code := range c.registry.Supported() {
		value, ok := m.Lookup(code)
		if !ok {
			continue
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		writeString(&buf, code)
		buf.WriteByte(':')
		writeString(&buf, value)
		written++
	}

	buf.WriteByte('}')
	return buf.String()
}

// Decode parses text as a JSON object of strings. Keys that are not supported
// languages are dropped; kept keys use the registry spelling. Syntactically invalid
// input returns an error wrapping ErrMalformed.
func (c *Codec) Decode(text string) (Map, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := make(Map, len(raw))
	from := make(map[string]string, len(raw))
	for key, value := range raw {
		code, ok := c.registry.Canonical(key)
		if !ok {
			continue
		}
		// an exact-spelling key beats differently cased duplicates,
		// otherwise the smallest key wins
		if prev, seen := from[code]; seen && (prev == code || (key != code && prev < key)) {
			continue
		}
		out[code] = value
		from[code] = key
	}
	return out, nil
}

// TryDecode is Decode without an error. On invalid input it returns a placeholder
// holding the first supported language mapped to empty text, and false.
func (c *Codec) TryDecode(text string) (Map, bool) {
	m, err := c.Decode(text)
	if err != nil {
		return Map{c.registry.First(): ""}, false
	}
	return m, true
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	// Encoder terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
}

// Serialize encodes m using the process-wide registry.
func Serialize(m Map) string {
	return New(nil).Encode(m)
}

// Deserialize decodes text using the process-wide registry.
func Deserialize(text string) (Map, error) {
	return New(nil).Decode(text)
}

// TryDeserialize decodes text using the process-wide registry and never fails.
func TryDeserialize(text string) (Map, bool) {
	return New(nil).TryDecode(text)
}
