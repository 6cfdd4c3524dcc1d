// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import "strings"

// parser holds the mutable state of one parse: the table-driven state
// machine's current state, the current container nesting depth, and the
// store being filled. It is allocated once per top-level parse call and
// discarded when that call returns -- there is nothing to clean up, since
// the only memory it owns is its own fields.
type parser struct {
	input View
	store *Store
	state cell
	depth int
}

// ParseView parses the JSON text in input into store, which is reset
// before parsing begins. It returns the number of tokens written on
// success. On failure it returns 0 and a *ParseError; the contents of
// store are unspecified at that point and must not be inspected.
func ParseView(store *Store, input View) (int, error) {
	store.Reset()
	p := &parser{input: input, store: store, state: stGO}

	n := input.Len()
	for pos := 0; pos <= n; pos++ {
		cl := cSpace // the synthetic end-of-input byte is always treated as space
		if pos < n {
			b, _ := input.At(pos)
			cl = classify(b)
			if cl == cError {
				return 0, newParseError(BadFormat, pos)
			}
		}

		next := lookup(p.state, cl)
		if next == errCell {
			return 0, newParseError(BadFormat, pos)
		}
		if next < numStates {
			p.state = next
			continue
		}
		if err := p.dispatch(next, pos); err != nil {
			return 0, err
		}
	}

	if p.depth != 0 {
		return 0, newParseError(Incomplete, n)
	}
	if p.state != stOK {
		return 0, newParseError(BadFormat, n)
	}

	store.tokens[store.n-1].Flags |= IsLast
	p.sealIfUnsealed(&store.tokens[0], n)
	return store.n, nil
}

// ParseBuffer parses the JSON text in buf into store. The caller must not
// mutate buf while any token derived from it is in use.
func ParseBuffer(store *Store, buf []byte) (int, error) {
	return ParseView(store, NewView(buf))
}

// ParseCString parses the JSON text in s up to (but not including) the
// first NUL byte, matching the zero-terminated-string entry point of the
// reference implementation. If s contains no NUL, the whole string is
// parsed.
func ParseCString(store *Store, s string) (int, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return ParseView(store, ViewOfString(s))
}

// dispatch performs the side effect of an action cell and advances state
// accordingly. pos is the byte offset of the character that produced the
// action.
func (p *parser) dispatch(action cell, pos int) error {
	switch action {
	case actBa, actBo, actBs, actBt, actBf, actBn, actBm, actBz, actBd:
		return p.begin(action, pos)
	case actFa:
		return p.finishContainer(Array, pos)
	case actFo:
		return p.finishContainer(Object, pos)
	case actPl:
		return p.processColon(pos)
	case actPm:
		return p.processComma(pos)
	case actPs:
		return p.processSpace(pos)
	case actPq:
		return p.processQuote(pos)
	}
	return newParseError(BadFormat, pos)
}

// begin allocates a new token for a Begin-X action and transitions to the
// state the action prescribes.
func (p *parser) begin(action cell, pos int) error {
	idx := p.store.alloc()
	if idx == -1 {
		return newParseError(NoTokens, pos)
	}

	var kind Kind
	var next cell
	switch action {
	case actBa:
		kind, next = Array, stAR
	case actBo:
		kind, next = Object, stOB
	case actBs:
		kind, next = String, stST
	case actBt:
		kind, next = True, stT1
	case actBf:
		kind, next = False, stF1
	case actBn:
		kind, next = Null, stN1
	case actBm:
		kind, next = Number, stMI
	case actBz:
		kind, next = Number, stZE
	case actBd:
		kind, next = Number, stIN
	}

	t := Token{Kind: kind, Depth: p.depth, start: pos}
	t.View = p.input.Slice(pos, p.input.Len())
	if idx == 0 {
		t.Flags |= IsFirst
	}
	p.store.tokens[idx] = t

	p.state = next
	if action == actBa || action == actBo {
		p.depth++
	}
	return nil
}

// finishContainer implements Fa/Fo. kind is Array for Fa, Object for Fo.
//
// The top-of-stack token (the most recently allocated record) is in one
// of three shapes when a closing bracket arrives: it is the container
// itself, still open and empty; it is an unsealed trailing scalar that
// never passed through Ps because no whitespace preceded the bracket; or
// it is already sealed (a string, a nested container, or a scalar that
// did pass through Ps/Pm/Pl earlier). Only the first two cases touch the
// top-of-stack token itself: the first seals it as the closed container,
// the second seals it as a scalar and then seals its parent. The third
// seals the innermost still-open container directly, however deep inside
// it the top-of-stack token sits.
func (p *parser) finishContainer(kind Kind, pos int) error {
	s := p.store
	tos := s.n - 1
	if tos < 0 {
		return newParseError(BadFormat, pos)
	}
	tok := &s.tokens[tos]

	switch {
	case !tok.Flags.Has(IsSealed) && tok.Kind == kind:
		p.seal(tok, pos+1)
	case !tok.Flags.Has(IsSealed):
		p.seal(tok, pos)
		parent := s.Parent(tos)
		if parent == -1 {
			return newParseError(BadFormat, pos)
		}
		p.sealIfUnsealed(&s.tokens[parent], pos+1)
	default:
		// tos is already sealed -- it is a member (or a deeper descendant)
		// of the container this bracket closes, not that container itself.
		// The closing container is the nearest token at the depth just
		// above the current one, since every token after it is deeper.
		parent := tos
		for parent >= 0 && s.tokens[parent].Depth != p.depth-1 {
			parent--
		}
		if parent == -1 {
			return newParseError(BadFormat, pos)
		}
		p.sealIfUnsealed(&s.tokens[parent], pos+1)
	}

	p.depth--
	if p.depth < 0 {
		return newParseError(BadFormat, pos)
	}
	p.state = stOK
	return nil
}

// processColon implements Pl, seen after an object key.
func (p *parser) processColon(pos int) error {
	s := p.store
	tos := s.n - 1
	if tos < 0 {
		return newParseError(BadFormat, pos)
	}
	p.sealIfUnsealed(&s.tokens[tos], pos)

	parent := s.Parent(tos)
	if parent == -1 || s.tokens[parent].Kind != Object {
		return newParseError(BadFormat, pos)
	}
	if childPosition(s, parent, tos)%2 != 0 {
		return newParseError(BadFormat, pos) // colon after something that isn't a key
	}
	p.state = stVA
	return nil
}

// processComma implements Pm, seen between array elements or object
// members.
func (p *parser) processComma(pos int) error {
	s := p.store
	tos := s.n - 1
	if tos < 0 {
		return newParseError(BadFormat, pos)
	}
	p.sealIfUnsealed(&s.tokens[tos], pos)

	// The comma belongs to the innermost open container, the nearest token
	// at the depth just above the current one; tos may sit deeper than its
	// direct members if the previous member was itself a container.
	parent := tos
	for parent >= 0 && s.tokens[parent].Depth != p.depth-1 {
		parent--
	}
	if parent == -1 {
		return newParseError(BadFormat, pos)
	}
	switch s.tokens[parent].Kind {
	case Array:
		p.state = stVA
	case Object:
		p.state = stKE
	default:
		return newParseError(BadFormat, pos)
	}
	return nil
}

// processSpace implements Ps: whitespace immediately after a scalar value
// seals it, if it has not already been sealed by an earlier action.
func (p *parser) processSpace(pos int) error {
	s := p.store
	if tos := s.n - 1; tos >= 0 && !s.tokens[tos].Kind.IsContainer() {
		p.sealIfUnsealed(&s.tokens[tos], pos)
	}
	p.state = stOK
	return nil
}

// processQuote implements Pq: the closing quote of a string, sealed
// inclusive of the quote itself. A string that is the even-positioned
// (key) child of an object sends the parser looking for a colon next;
// every other string is a complete value.
func (p *parser) processQuote(pos int) error {
	s := p.store
	tos := s.n - 1
	if tos < 0 {
		return newParseError(BadFormat, pos)
	}
	p.seal(&s.tokens[tos], pos+1)

	parent := s.Parent(tos)
	if parent != -1 && s.tokens[parent].Kind == Object && childPosition(s, parent, tos)%2 == 0 {
		p.state = stCO
	} else {
		p.state = stOK
	}
	return nil
}

// seal sets t's View to its final extent and marks it sealed.
func (p *parser) seal(t *Token, end int) {
	t.View = p.input.Slice(t.start, end)
	t.Flags |= IsSealed
}

// sealIfUnsealed seals t only if it has not already been sealed, so that
// a later whitespace or comma byte beside an already-finished value (a
// string, or a container that just closed) cannot clobber its extent.
func (p *parser) sealIfUnsealed(t *Token, end int) {
	if !t.Flags.Has(IsSealed) {
		p.seal(t, end)
	}
}

// childPosition returns the zero-based position of child among parent's
// direct children, used to tell object keys from object values.
func childPosition(s *Store, parent, child int) int {
	pos := 0
	for c := s.Child(parent); c != -1 && c != child; c = s.NextSibling(c) {
		pos++
	}
	return pos
}
