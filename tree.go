package gst

import "log/slog"

// Tree is an in-memory generalized suffix tree built incrementally with
// Ukkonen's algorithm, generalized to hold the suffixes of many distinct
// keys. The zero value is not usable; construct one with NewTree. A Tree is
// single-writer: Put must never run concurrently with itself or with
// Search.
type Tree struct {
	root       *node
	activeLeaf *node

	hasHighest bool
	highestID  int
	size       int

	logger   *slog.Logger
	runeMode bool
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger overrides the *slog.Logger used to report rejected Puts and
// recovered invariant violations. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithInitialCapacityHint pre-sizes the root node's edge map, useful when
// the caller knows roughly how many distinct first bytes the inserted
// keys will span.
func WithInitialCapacityHint(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.root.edges = make(map[byte]*edge, n)
		}
	}
}

// WithRuneMode sets the default rune-aware normalization mode used by
// PutNormalized and SearchNormalized (see normalize.go). It has no effect
// on the byte-indexed tree itself.
func WithRuneMode(enabled bool) Option {
	return func(t *Tree) { t.runeMode = enabled }
}

// NewTree constructs an empty generalized suffix tree.
func NewTree(opts ...Option) *Tree {
	root := newNode()
	t := &Tree{
		root:   root,
		logger: slog.Default(),
	}
	t.activeLeaf = root
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len reports the number of Put calls this tree has accepted so far.
func (t *Tree) Len() int {
	return t.size
}

// HighestID returns the highest id accepted by Put so far, and false if
// no Put has succeeded yet.
func (t *Tree) HighestID() (id int, ok bool) {
	return t.highestID, t.hasHighest
}
