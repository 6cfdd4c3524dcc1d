// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import "fmt"

// Kind identifies the grammatical role of a Token.
type Kind int

// The set of kinds a Token can report. Integer is reserved for parity with
// the reference grammar's distinct "leading 1-9 digit" start state, but the
// parser never emits it: every JSON number, integral or not, is reported as
// Number, since distinguishing them would require evaluating the digits --
// which this parser deliberately never does.
const (
	Unknown Kind = iota
	Object
	Array
	String
	Number
	Integer
	True
	False
	Null
)

var kindStr = [...]string{
	Unknown: "Unknown",
	Object:  "Object",
	Array:   "Array",
	String:  "String",
	Number:  "Number",
	Integer: "Integer",
	True:    "True",
	False:   "False",
	Null:    "Null",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindStr) {
		return kindStr[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsContainer reports whether k is Object or Array.
func (k Kind) IsContainer() bool { return k == Object || k == Array }

// Flags records bookend and sealing state for a Token.
type Flags uint8

// The three flag bits a Token carries.
const (
	// IsFirst marks the first token written to a Store: the root value.
	IsFirst Flags = 1 << iota
	// IsLast marks the last token written to a Store by a successful parse.
	IsLast
	// IsSealed marks a token whose View has reached its final, correct
	// extent. Every token in a successfully parsed Store is sealed; the
	// flag exists because containers are allocated before their closing
	// bracket is seen, so a token can transiently exist unsealed while its
	// children are being parsed.
	IsSealed
)

// Has reports whether f has all the bits of want set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// A Token is one node of the flat, preorder token array a parse produces.
// It borrows its View from the original input buffer; it owns no memory of
// its own.
type Token struct {
	Kind  Kind
	View  View
	Depth int
	Flags Flags

	start int // absolute offset into the parse's input; used only to reseal View
}

// IsFirst reports whether t is the root token of its store.
func (t Token) IsFirst() bool { return t.Flags.Has(IsFirst) }

// IsLast reports whether t is the final token written by the parse that
// produced it.
func (t Token) IsLast() bool { return t.Flags.Has(IsLast) }

// IsSealed reports whether t's View has reached its final extent. Tokens
// returned from a successful parse are always sealed.
func (t Token) IsSealed() bool { return t.Flags.Has(IsSealed) }
