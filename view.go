// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import (
	"math"

	"go4.org/mem"
)

// End is the sentinel end-of-view bound: passed as the end argument to
// Slice, it selects everything up to (and including) the last byte of the
// receiver, exactly like an ordinary past-end bound would after clamping.
const End = math.MaxInt

// A View is an immutable, non-owning {pointer, length} window over a byte
// sequence. Slicing a View never copies bytes; it only narrows the window.
// The zero View is empty.
//
// View wraps go4.org/mem.RO, the same borrowed-memory primitive the jtree
// scanner uses to avoid allocating for every lexical token, and layers on
// top of it the specific slicing contract this parser's token store
// relies on: negative bounds count from the end, End (or any bound past
// the length) clamps to the length, and a view never outlives the buffer
// it was constructed from.
type View struct {
	base mem.RO
}

// NewView constructs a View over buf. The caller must not mutate buf for as
// long as any View (or Token) derived from it is in use.
func NewView(buf []byte) View { return View{base: mem.B(buf)} }

// ViewOfString constructs a View over the bytes of s.
func ViewOfString(s string) View { return View{base: mem.S(s)} }

// Len returns the number of bytes in the view.
func (v View) Len() int { return v.base.Len() }

// IsEmpty reports whether the view has zero length.
func (v View) IsEmpty() bool { return v.base.Len() == 0 }

// At returns the byte at index i and true, or (0, false) if i is out of
// range.
func (v View) At(i int) (byte, bool) {
	if i < 0 || i >= v.base.Len() {
		return 0, false
	}
	return v.base.At(i), true
}

// Slice returns the sub-view [start, end) of v. Either bound may be
// negative, counting backward from the end of v (-1 is the last byte);
// either bound may also be End or any value past the length, which clamps
// to the length. The result is empty, not an error, if the normalized
// bounds are out of order.
func (v View) Slice(start, end int) View {
	n := v.base.Len()
	s := clampIndex(start, n)
	e := clampIndex(end, n)
	if e < s {
		e = s
	}
	return View{base: v.base.Slice(s, e)}
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Equal reports whether v and w hold byte-identical content.
func (v View) Equal(w View) bool { return v.base.Equal(w.base) }

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool { return v.base.EqualString(s) }

// String copies the contents of v into a new Go string.
func (v View) String() string { return v.base.StringCopy() }

// Bytes copies the contents of v into a new byte slice.
func (v View) Bytes() []byte {
	out := make([]byte, v.base.Len())
	v.base.Copy(out)
	return out
}
