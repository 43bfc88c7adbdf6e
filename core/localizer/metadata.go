package localizer

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// TagName is the struct tag that marks localizable fields.
//
//	type Product struct {
//		Name     string    `localize:"text"`
//		Category *Category // nested, followed by OneLevel and Deep
//		Internal *Category `localize:"-"` // never followed
//	}
const TagName = "localize"

const (
	tagText = "text"
	tagSkip = "-"
)

// MemberKind classifies a field of a localizable type.
type MemberKind uint8

const (
	// TextMember holds a serialized content map to be resolved in place.
	TextMember MemberKind = iota + 1
	// NestedMember holds a localizable struct or a pointer to one.
	NestedMember
	// SequenceMember holds a slice or array of localizable structs or pointers to them.
	SequenceMember
)

// String implements fmt.Stringer.
func (k MemberKind) String() string {
	switch k {
	case TextMember:
		return "text"
	case NestedMember:
		return "nested"
	case SequenceMember:
		return "sequence"
	default:
		return "unknown"
	}
}

// Member describes one field of a localizable type.
type Member struct {
	Name  string
	Index []int
	Kind  MemberKind
	// Pointer is set when the field (TextMember, NestedMember) or the sequence
	// element (SequenceMember) is a pointer.
	Pointer bool
}

// TypeInfo is the cached, immutable description of a struct type.
type TypeInfo struct {
	Type    reflect.Type
	Members []Member
}

// Localizable reports whether the type has anything to resolve or follow.
func (ti *TypeInfo) Localizable() bool {
	return len(ti.Members) > 0
}

// TypeCache memoizes TypeInfo per struct type for the lifetime of the process.
// Entries are never evicted; the number of distinct types is bounded by the program.
type TypeCache struct {
	entries sync.Map // reflect.Type -> *TypeInfo
}

// NewTypeCache creates an empty cache.
func NewTypeCache() *TypeCache {
	return &TypeCache{}
}

// Describe returns the members of t, reflecting over it only on first request.
// Pointer types are described by their element type. Concurrent first requests
// for the same type may both compute, but every caller gets the single stored entry.
func (c *TypeCache) Describe(t reflect.Type) *TypeInfo {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return c.describe(t, make(map[reflect.Type]bool))
}

// Len returns the number of cached types.
func (c *TypeCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *TypeCache) describe(t reflect.Type, visiting map[reflect.Type]bool) *TypeInfo {
	if v, ok := c.entries.Load(t); ok {
		return v.(*TypeInfo)
	}

	info := &TypeInfo{Type: t}
	if t.Kind() != reflect.Struct {
		actual, _ := c.entries.LoadOrStore(t, info)
		return actual.(*TypeInfo)
	}

	visiting[t] = true
	defer delete(visiting, t)

	// VisibleFields lists an embedded struct before the fields it promotes.
	var skipped [][]int
	for _, f := range reflect.VisibleFields(t) {
		if underSkipped(f.Index, skipped) {
			continue
		}

		tag, _, _ := strings.Cut(f.Tag.Get(TagName), ",")
		if f.Anonymous && structType(f.Type) != nil {
			// Promoted fields are listed on their own unless the embedding is skipped.
			if tag == tagSkip {
				skipped = append(skipped, f.Index)
			}
			continue
		}
		if !f.IsExported() {
			continue
		}

		switch tag {
		case tagSkip:
			continue
		case tagText:
			if isText(f.Type) {
				info.Members = append(info.Members, Member{
					Name:    f.Name,
					Index:   f.Index,
					Kind:    TextMember,
					Pointer: f.Type.Kind() == reflect.Pointer,
				})
			}
			continue
		}

		if kind, ptr, ok := c.nestedKind(f.Type, visiting); ok {
			info.Members = append(info.Members, Member{
				Name:    f.Name,
				Index:   f.Index,
				Kind:    kind,
				Pointer: ptr,
			})
		}
	}

	actual, _ := c.entries.LoadOrStore(t, info)
	return actual.(*TypeInfo)
}

// underSkipped reports whether index lies inside an embedded field tagged "-".
func underSkipped(index []int, skipped [][]int) bool {
	for _, prefix := range skipped {
		if len(index) > len(prefix) && slices.Equal(index[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// nestedKind classifies ft as a nested member or a sequence of them.
func (c *TypeCache) nestedKind(ft reflect.Type, visiting map[reflect.Type]bool) (MemberKind, bool, bool) {
	switch ft.Kind() {
	case reflect.Struct, reflect.Pointer:
		if st := structType(ft); st != nil && c.localizable(st, visiting) {
			return NestedMember, ft.Kind() == reflect.Pointer, true
		}
	case reflect.Slice, reflect.Array:
		elem := ft.Elem()
		if st := structType(elem); st != nil && c.localizable(st, visiting) {
			return SequenceMember, elem.Kind() == reflect.Pointer, true
		}
	}
	return 0, false, false
}

// localizable treats a type still being described as localizable,
// which lets recursive types such as a category with a parent category be followed.
func (c *TypeCache) localizable(st reflect.Type, visiting map[reflect.Type]bool) bool {
	if visiting[st] {
		return true
	}
	return c.describe(st, visiting).Localizable()
}

// structType returns the struct type behind t or *t, or nil.
func structType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		return t
	}
	return nil
}

func isText(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}

var defaultTypes = NewTypeCache()

// Types returns the process-wide type cache shared by localizers created without WithTypeCache.
func Types() *TypeCache {
	return defaultTypes
}
