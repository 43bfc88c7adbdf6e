package localizer

import "fmt"

// Depth controls how far a localization call recurses into nested objects.
type Depth uint8

const (
	// Shallow resolves only the object's own localizable fields.
	Shallow Depth = iota
	// OneLevel also resolves the fields of directly nested objects, and stops there.
	OneLevel
	// Deep recurses without a level limit. Only cycle detection bounds it.
	Deep
)

// String implements fmt.Stringer.
func (d Depth) String() string {
	switch d {
	case Shallow:
		return "shallow"
	case OneLevel:
		return "one_level"
	case Deep:
		return "deep"
	default:
		return fmt.Sprintf("depth(%d)", uint8(d))
	}
}

// next is the policy applied beneath a nested object. OneLevel does not compound.
func (d Depth) next() Depth {
	if d == OneLevel {
		return Shallow
	}
	return d
}
