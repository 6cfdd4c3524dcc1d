// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

// A Store is a caller-supplied, bounded array of Tokens that a parse fills
// in preorder. It never grows: once its backing array is full, a parse
// that needs one more token fails with NoTokens. This mirrors the
// reference implementation's fixed-size token pool, which is what makes
// the parser usable on memory-constrained targets -- the caller decides
// the worst case up front instead of the parser allocating one.
type Store struct {
	tokens []Token
	n      int // number of tokens written so far
}

// NewStore wraps buf as a Store with no tokens yet written. The Store
// retains buf; the caller must not use buf directly while parsing is in
// progress.
func NewStore(buf []Token) *Store {
	return &Store{tokens: buf}
}

// Len reports the number of tokens currently held by s.
func (s *Store) Len() int { return s.n }

// Cap reports the maximum number of tokens s can hold.
func (s *Store) Cap() int { return len(s.tokens) }

// Reset discards all tokens, leaving the backing array in place for reuse.
func (s *Store) Reset() { s.n = 0 }

// At returns the token at index i. It panics if i is out of [0, Len()),
// the same contract a plain slice index gives.
func (s *Store) At(i int) Token { return s.tokens[:s.n][i] }

// Tokens returns the sealed prefix of s's backing array holding the
// tokens written by the most recent parse. The returned slice aliases s's
// storage and is invalidated by the next parse into s.
func (s *Store) Tokens() []Token { return s.tokens[:s.n] }

// alloc reserves the next token slot and returns its index, or -1 if s is
// full.
func (s *Store) alloc() int {
	if s.n >= len(s.tokens) {
		return -1
	}
	i := s.n
	s.n++
	return i
}

func (s *Store) valid(i int) bool { return i >= 0 && i < s.n }

// Root returns the index of the root token (depth 0) reachable from i, or
// -1 if i itself is absent (< 0). Every other navigation result can be
// chained back to Root by repeated Parent calls; Root exists because that
// walk is common enough to warrant a direct, single-pass implementation.
func (s *Store) Root(i int) int {
	if !s.valid(i) {
		return -1
	}
	for s.tokens[i].Depth > 0 {
		i--
	}
	return i
}

// Parent returns the index of the token that immediately encloses i, or
// -1 if i is absent or is already the root.
func (s *Store) Parent(i int) int {
	if !s.valid(i) {
		return -1
	}
	depth := s.tokens[i].Depth
	if depth == 0 {
		return -1
	}
	for j := i - 1; j >= 0; j-- {
		if s.tokens[j].Depth == depth-1 {
			return j
		}
	}
	return -1
}

// Child returns the index of the first direct child of i -- the first
// member key of an object, or the first element of an array -- or -1 if i
// is absent or has no children.
func (s *Store) Child(i int) int {
	if !s.valid(i) {
		return -1
	}
	if !s.tokens[i].Kind.IsContainer() {
		return -1
	}
	j := i + 1
	if !s.valid(j) || s.tokens[j].Depth != s.tokens[i].Depth+1 {
		return -1
	}
	return j
}

// NextSibling returns the index of the token that follows i's entire
// subtree at i's own depth, or -1 if i is absent or is the last child of
// its parent.
func (s *Store) NextSibling(i int) int {
	if !s.valid(i) {
		return -1
	}
	depth := s.tokens[i].Depth
	for j := i + 1; s.valid(j); j++ {
		d := s.tokens[j].Depth
		if d == depth {
			return j
		}
		if d < depth {
			return -1
		}
	}
	return -1
}

// PrevSibling returns the index of the token immediately preceding i's
// subtree at i's own depth, or -1 if i is absent or is the first child of
// its parent.
func (s *Store) PrevSibling(i int) int {
	if !s.valid(i) {
		return -1
	}
	depth := s.tokens[i].Depth
	for j := i - 1; j >= 0; j-- {
		d := s.tokens[j].Depth
		if d == depth {
			return j
		}
		if d < depth {
			return -1
		}
	}
	return -1
}

// Prev returns the index that immediately precedes i in preorder, or -1
// if i is absent or is the first token.
func (s *Store) Prev(i int) int {
	if !s.valid(i) || i == 0 {
		return -1
	}
	return i - 1
}

// Next returns the index that immediately follows i in preorder, or -1 if
// i is absent or is the last token.
func (s *Store) Next(i int) int {
	if !s.valid(i) || i+1 >= s.n {
		return -1
	}
	return i + 1
}

// FindKey returns the index of the value token paired with the member key
// key in the object at index obj, searching only obj's direct members (not
// nested objects). It returns -1, false if obj is not an object, or has no
// member with that key.
//
// mu_json's reference header reserved mu_json_find_key for exactly this
// purpose but never implemented it; this and FindKeyDeep fill that gap.
func (s *Store) FindKey(obj int, key string) (int, bool) {
	if !s.valid(obj) || s.tokens[obj].Kind != Object {
		return -1, false
	}
	for k := s.Child(obj); k != -1; k = s.NextSibling(s.NextSibling(k)) {
		v := s.NextSibling(k)
		if v == -1 {
			return -1, false
		}
		if keyView(s.tokens[k]).EqualString(key) {
			return v, true
		}
	}
	return -1, false
}

// FindKeyDeep is like FindKey but also searches nested objects and arrays.
// A direct member of obj is preferred; failing that, obj's container
// children are searched in order, each in the same way, and the first
// match found is returned.
func (s *Store) FindKeyDeep(obj int, key string) (int, bool) {
	if !s.valid(obj) {
		return -1, false
	}
	if s.tokens[obj].Kind == Object {
		if v, ok := s.FindKey(obj, key); ok {
			return v, true
		}
	}
	for c := s.Child(obj); c != -1; c = s.NextSibling(c) {
		if s.tokens[c].Kind.IsContainer() {
			if v, ok := s.FindKeyDeep(c, key); ok {
				return v, true
			}
		}
	}
	return -1, false
}

// keyView strips the surrounding quotes from a String token's view, which
// is the only place FindKey needs to look at key content rather than
// treating it as opaque.
func keyView(t Token) View {
	if t.View.Len() < 2 {
		return t.View
	}
	return t.View.Slice(1, -1)
}
