// Package contentmap encodes and decodes language content maps, the at-rest form of
// localizable text.
//
// A content map is a flat JSON object keyed by language code:
//
//	{"en":"Car","pt":"Carro","es":"Coche"}
//
// Encoding is a filtered projection rather than a faithful round trip: only languages
// supported by the registry are written, in the registry's order. Decoding drops the
// same unsupported keys, so Decode(Encode(m)) returns exactly the supported subset of m.
//
//	codec := contentmap.New(registry)
//	text := codec.Encode(contentmap.Map{"en": "Car", "pt": "Carro"})
//	m, err := codec.Decode(text)
//
// TryDecode never fails. On malformed input it returns a placeholder map holding the
// first supported language with empty text, plus false, which lets a caller degrade a
// single value without stopping its work.
package contentmap
