// Package localizer resolves multi-language text stored on struct fields into the text
// for one language, in place.
//
// A localizable field holds a serialized content map at rest (see package contentmap)
// and is marked with the `localize:"text"` struct tag. Fields whose type is a struct,
// a pointer to one, or a slice or array of either are nested members and are followed
// according to the Depth policy.
//
//	type Category struct {
//		Name string `localize:"text"`
//	}
//
//	type Product struct {
//		Name       string  `localize:"text"`
//		Summary    *string `localize:"text"`
//		Available  bool
//		Category   *Category
//		Related    []*Product
//		AuditTrail *Category `localize:"-"`
//	}
//
//	p := &Product{Name: `{"en":"Car","pt":"Carro"}`}
//	_, err := localizer.Localize(p, "pt", localizer.Shallow)
//	// p.Name == "Carro"
//
// Embedded structs contribute their fields to the outer type. Tagging the embedded
// field with `localize:"-"` leaves all of its promoted fields alone.
//
// # Depth
//
// Shallow touches only the root's own fields. OneLevel also resolves the fields of
// objects directly referenced by the root, and nothing below them. Deep follows every
// reachable object.
//
// # Fallback
//
// An unsupported language code is replaced by the registry's first supported language
// before the walk starts. For each field, Resolve returns the requested language when
// its text is not blank, otherwise the first supported language, otherwise any entry
// the content map holds.
//
// Text that does not decode as a content map, such as a value localized earlier, is
// left untouched, so localizing twice is harmless.
//
// # Cycles
//
// Every object visited during one call is recorded by address and type. A reference
// back to an object already recorded is not followed, so cyclic graphs terminate and
// each distinct object is visited at most once per call. Two different objects that
// are equal by value are still both visited.
//
// # Errors
//
// A content map that decodes but holds no supported language cannot be resolved. The
// field is left unchanged, the failure is logged and returned as a *MemberError, and
// the rest of the graph is still processed.
//
// # Type Metadata
//
// Field discovery happens once per struct type through reflection and is cached in a
// TypeCache for the life of the process. The cache is safe for concurrent use.
//
// # Concurrency
//
// A Localizer can be shared. Callers must not localize overlapping object graphs from
// several goroutines at once, since field writes are not synchronized.
package localizer
