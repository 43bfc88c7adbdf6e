package localizer

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"
)

var std = New()

// Default returns the process-wide Localizer.
func Default() *Localizer {
	return std
}

// Localize resolves item in place with the process-wide Localizer and returns it.
func Localize[T any](item T, code string, depth Depth) (T, error) {
	return item, std.Localize(item, code, depth)
}

// LocalizeContext is Localize with the language taken from ctx or the ambient language.
func LocalizeContext[T any](ctx context.Context, item T, depth Depth) (T, error) {
	return item, std.LocalizeContext(ctx, item, depth)
}

// LocalizeSeq localizes items lazily with the process-wide Localizer.
func LocalizeSeq[T any](items iter.Seq[T], code string, depth Depth) iter.Seq2[T, error] {
	return Seq(std, items, code, depth)
}

// LocalizeAll localizes every element of items with the process-wide Localizer.
func LocalizeAll[T any](items []T, code string, depth Depth) error {
	return All(std, items, code, depth)
}

// Seq returns a sequence yielding each element of items after localizing it with l.
// Order and length are preserved and nothing happens until the sequence is ranged over.
// The sequence is single-use: ranging over it again yields nothing.
func Seq[T any](l *Localizer, items iter.Seq[T], code string, depth Depth) iter.Seq2[T, error] {
	var used atomic.Bool
	return func(yield func(T, error) bool) {
		if used.Swap(true) {
			return
		}
		for item := range items {
			if !yield(item, l.Localize(item, code, depth)) {
				return
			}
		}
	}
}

// All localizes every element of items with l and joins the errors.
// Each element gets its own depth chain.
func All[T any](l *Localizer, items []T, code string, depth Depth) error {
	var errs []error
	for _, item := range items {
		if err := l.Localize(item, code, depth); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
