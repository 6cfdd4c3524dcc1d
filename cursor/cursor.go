// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements path-based traversal over a parsed mu-json
// token store, for callers who would rather address object members by key
// and array elements by index than walk the flat array token-by-token.
//
// It is a thin adapter over mujson.Store's linear-scan navigation: a
// Cursor is just a current token index plus the sequence of path elements
// that got it there, re-derived on every Down call rather than cached.
package cursor

import (
	"errors"
	"fmt"

	mujson "github.com/wolfgangimig/mu-json"
)

// A Cursor tracks a current position within a Store, reached by a sequence
// of Down steps from an origin token. Once any step fails, the Cursor
// records the error and ignores further Down/Up calls until Reset.
type Cursor struct {
	store  *mujson.Store
	origin int
	cur    int
	path   []any
	err    error
}

// New constructs a Cursor over store, starting at the token index origin
// (ordinarily 0, the root).
func New(store *mujson.Store, origin int) *Cursor {
	return &Cursor{store: store, origin: origin, cur: origin}
}

// Origin returns the token index the Cursor was constructed with.
func (c *Cursor) Origin() int { return c.origin }

// AtOrigin reports whether the Cursor is positioned at its origin with no
// error pending.
func (c *Cursor) AtOrigin() bool { return c.err == nil && c.cur == c.origin }

// Index reports the token index the Cursor currently points to.
func (c *Cursor) Index() int { return c.cur }

// Token returns the token at the Cursor's current position.
func (c *Cursor) Token() mujson.Token { return c.store.At(c.cur) }

// Path reports the sequence of path elements applied since the origin (or
// the last Reset).
func (c *Cursor) Path() []any { return c.path }

// Err reports the first error encountered by a Down or Up call since the
// origin (or the last Reset), or nil if none occurred.
func (c *Cursor) Err() error { return c.err }

// Reset returns the Cursor to its origin and clears any pending error.
func (c *Cursor) Reset() *Cursor {
	c.cur = c.origin
	c.path = nil
	c.err = nil
	return c
}

// Up moves the Cursor to the parent of its current token, popping the
// last path element. It is a no-op once an error is pending, and it sets
// an error if the Cursor is already at a token with no parent.
func (c *Cursor) Up() *Cursor {
	if c.err != nil {
		return c
	}
	parent := c.store.Parent(c.cur)
	if parent == -1 {
		c.err = errors.New("cursor: no parent of current token")
		return c
	}
	c.cur = parent
	if len(c.path) > 0 {
		c.path = c.path[:len(c.path)-1]
	}
	return c
}

// Down walks the Cursor through a sequence of path elements, stopping at
// the first one that fails. Each element must be one of:
//
//   - string: look up this key among the direct members of the current
//     object, and descend to its value.
//   - int: descend to the n'th (0-based) element of the current array;
//     negative n counts back from the end, as in a Python slice index.
//   - nil: no-op, useful when a path is assembled conditionally.
//   - func(*mujson.Store, int) (int, error): a custom selector given the
//     store and the current token index, returning the next index.
//
// Down is safe to call on a Cursor that already has a pending error; it
// does nothing in that case.
func (c *Cursor) Down(path ...any) *Cursor {
	for _, el := range path {
		if c.err != nil {
			return c
		}
		switch v := el.(type) {
		case nil:
			continue
		case string:
			next, ok := c.store.FindKey(c.cur, v)
			if !ok {
				c.err = fmt.Errorf("cursor: no member %q", v)
				return c
			}
			c.cur = next
		case int:
			next, err := arrayIndex(c.store, c.cur, v)
			if err != nil {
				c.err = err
				return c
			}
			c.cur = next
		case func(*mujson.Store, int) (int, error):
			next, err := v(c.store, c.cur)
			if err != nil {
				c.err = err
				return c
			}
			c.cur = next
		default:
			c.err = fmt.Errorf("cursor: invalid path element of type %T", el)
			return c
		}
		c.path = append(c.path, el)
	}
	return c
}

// arrayIndex resolves a 0-based (or negative, from-the-end) element index
// against the array token at idx.
func arrayIndex(s *mujson.Store, idx, n int) (int, error) {
	if s.At(idx).Kind != mujson.Array {
		return -1, fmt.Errorf("cursor: token at index %d is not an array", idx)
	}
	count := 0
	for c := s.Child(idx); c != -1; c = s.NextSibling(c) {
		count++
	}
	if n < 0 {
		n += count
	}
	if n < 0 || n >= count {
		return -1, fmt.Errorf("cursor: array index %d out of range [0,%d)", n, count)
	}
	c := s.Child(idx)
	for i := 0; i < n; i++ {
		c = s.NextSibling(c)
	}
	return c, nil
}
