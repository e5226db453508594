// Package linear defines the Node cell, the Linear container and the
// options that configure it.
package linear

// DefaultSeparator is the separator String uses unless WithSeparator
// overrides it.
const DefaultSeparator = ","

// Node is a single list cell: a value and a forward link.
//
// Fields:
//   - Value — payload; may be overwritten in place through Linear.Node.
//   - Next  — following cell, or nil when this is the last one.
//
// A Node reachable from a Linear belongs to that list only. Relinking Next
// by hand bypasses the length/tail bookkeeping and is not supported.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// Linear is a singly-linked list of T.
//
// The zero value is not ready for use (its separator is empty); build one
// with New or From.
//
// WARNING: Linear provides no synchronization. Concurrent mutation must be
// serialized by the caller.
type Linear[T any] struct {
	root   *Node[T] // first node; nil iff length == 0
	tail   *Node[T] // last node; nil iff length == 0
	length int

	opts Options
}

// Option configures a Linear at construction.
// Use with New(opts...).
type Option func(*Options)

// Options holds the construction-time configuration of a Linear.
type Options struct {
	// Separator is placed between values by String.
	// Defaults to DefaultSeparator.
	Separator string
}

// DefaultOptions returns Options with:
//   - Separator = DefaultSeparator (",")
func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
	}
}

// WithSeparator returns an Option that sets the separator used by String.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}
