package localizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"unsafe"

	"github.com/dmitrymomot/l10n/core/contentmap"
	"github.com/dmitrymomot/l10n/core/language"
	"github.com/dmitrymomot/l10n/core/logger"
)

// Localizer resolves localizable fields of object graphs in place.
// It holds no per-call state and is safe for concurrent use on disjoint graphs.
type Localizer struct {
	registry *language.Registry
	codec    *contentmap.Codec
	types    *TypeCache
	logger   *slog.Logger
	source   func(context.Context) string
}

// New creates a Localizer. By default it uses the process-wide registry and type cache,
// slog.Default for logging and language.Resolve as the current-language source.
func New(opts ...Option) *Localizer {
	l := &Localizer{
		registry: language.Default(),
		types:    defaultTypes,
		source:   language.Resolve,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.codec = contentmap.New(l.registry)
	return l
}

// Registry returns the registry used for language validity and fallback.
func (l *Localizer) Registry() *language.Registry {
	return l.registry
}

func (l *Localizer) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}

// Language returns the code a call would use for code: the registry spelling when it
// is supported, otherwise the first supported language.
func (l *Localizer) Language(code string) string {
	if c, ok := l.registry.Canonical(code); ok {
		return c
	}
	return l.registry.First()
}

// Localize resolves root, and per depth its nested objects, for code.
// Root must be a pointer to a struct; a nil pointer is a no-op.
//
// Failures of individual fields do not stop the walk. They are logged and returned
// together, each wrapped in a *MemberError, once every reachable field was handled.
func (l *Localizer) Localize(root any, code string, depth Depth) error {
	return l.localize(context.Background(), root, code, depth)
}

// LocalizeContext is Localize with the language taken from the current-language source.
func (l *Localizer) LocalizeContext(ctx context.Context, root any, depth Depth) error {
	return l.localize(ctx, root, l.current(ctx), depth)
}

func (l *Localizer) current(ctx context.Context) string {
	if code := strings.TrimSpace(l.source(ctx)); code != "" {
		return code
	}
	return language.Primary
}

func (l *Localizer) localize(ctx context.Context, root any, code string, depth Depth) error {
	if root == nil {
		return nil
	}

	rv := reflect.ValueOf(root)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("%w: got %T", ErrUnsupportedType, root)
	}
	if rv.IsNil() {
		return nil
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrUnsupportedType, root)
	}

	w := &walker{
		ctx:   ctx,
		l:     l,
		code:  l.Language(code),
		first: l.registry.First(),
		chain: make(depthChain),
	}
	w.localizeItem(rv.Elem(), depth)

	if len(w.errs) > 0 {
		l.log().DebugContext(ctx, "localization finished with failed fields",
			logger.Component("localizer"),
			logger.Type(rv.Type().String()),
			logger.Language(w.code),
			logger.Count("failed", len(w.errs)),
		)
	}
	return errors.Join(w.errs...)
}

// identity is an object's address plus its type. The type matters because a struct
// and its first field share an address.
type identity struct {
	addr unsafe.Pointer
	typ  reflect.Type
}

func identityOf(v reflect.Value) identity {
	return identity{addr: v.Addr().UnsafePointer(), typ: v.Type()}
}

// depthChain records every object visited during one top-level call.
// Entries are compared by identity, never by value.
type depthChain map[identity]struct{}

// add records id and reports whether it was new.
func (c depthChain) add(id identity) bool {
	if _, ok := c[id]; ok {
		return false
	}
	c[id] = struct{}{}
	return true
}

type walker struct {
	ctx   context.Context
	l     *Localizer
	code  string
	first string
	chain depthChain
	errs  []error
}

// localizeItem handles one addressable struct value.
func (w *walker) localizeItem(v reflect.Value, depth Depth) {
	info := w.l.types.Describe(v.Type())

	for _, m := range info.Members {
		field, err := v.FieldByIndexErr(m.Index)
		if err != nil {
			// nil embedded pointer
			continue
		}

		switch m.Kind {
		case TextMember:
			w.localizeText(info.Type, m, field)
		case NestedMember:
			if depth != Shallow {
				w.localizeNested(v, m, field, depth)
			}
		case SequenceMember:
			if depth != Shallow {
				w.localizeSequence(v, m, field, depth)
			}
		}
	}
}

func (w *walker) localizeText(t reflect.Type, m Member, field reflect.Value) {
	if !field.CanSet() {
		return
	}
	target := field
	if m.Pointer {
		if field.IsNil() {
			return
		}
		target = field.Elem()
	}

	raw := target.String()
	if strings.TrimSpace(raw) == "" {
		return
	}

	// Plain or already resolved text does not decode and is left as is.
	content, ok := w.l.codec.TryDecode(raw)
	if !ok {
		return
	}

	text, err := Resolve(content, w.code, w.first)
	if err != nil {
		w.fail(t, m.Name, err)
		return
	}
	target.SetString(text)
}

func (w *walker) localizeNested(base reflect.Value, m Member, field reflect.Value, depth Depth) {
	child := field
	if m.Pointer {
		if field.IsNil() {
			return
		}
		child = field.Elem()
	}
	w.visit(base, child, depth)
}

func (w *walker) localizeSequence(base reflect.Value, m Member, field reflect.Value, depth Depth) {
	if field.Kind() == reflect.Slice && field.IsNil() {
		return
	}
	for i := range field.Len() {
		elem := field.Index(i)
		if m.Pointer {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		w.visit(base, elem, depth)
	}
}

// visit recurses from base into child unless child is base itself or was already
// recorded in the depth chain during this call.
func (w *walker) visit(base, child reflect.Value, depth Depth) {
	baseID, childID := identityOf(base), identityOf(child)
	if baseID == childID {
		return
	}

	w.chain.add(baseID)
	if !w.chain.add(childID) {
		w.l.log().DebugContext(w.ctx, "object already visited, skipping",
			logger.Component("localizer"),
			logger.Type(child.Type().String()),
			logger.Depth(depth.String()),
		)
		return
	}

	w.localizeItem(child, depth.next())
}

func (w *walker) fail(t reflect.Type, field string, err error) {
	merr := &MemberError{Type: t, Field: field, Err: err}
	w.errs = append(w.errs, merr)
	w.l.log().WarnContext(w.ctx, "field not localized",
		logger.Component("localizer"),
		logger.Type(t.String()),
		logger.Field(field),
		logger.Language(w.code),
		logger.Error(err),
	)
}
