// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package mujson implements a compact, allocation-free JSON parser.
//
// # Parsing
//
// The parser consumes a byte sequence and writes a preorder sequence of
// Token records into a caller-supplied Store, without copying value bytes,
// unescaping strings, or evaluating numbers. There is no separate AST: the
// flat, depth-tagged token array produced by a successful parse is the
// tree.
//
//	var buf [64]Token
//	store := NewStore(buf[:])
//	n, err := ParseBuffer(store, []byte(`{"a": [1, 2, true]}`))
//	if err != nil {
//	   log.Fatalf("parse failed: %v", err)
//	}
//	root := store.At(0)
//	log.Printf("root is %v with %d tokens", root.Kind, n)
//
// ParseCString, ParseView, and ParseBuffer are three equivalent entry
// points differing only in how the input is packaged; all three delegate to
// the same table-driven finite state machine.
//
// # Tokens
//
// A Token reports its Kind, its Depth in the tree (0 at the root), and a
// View spanning its exact textual extent -- including the surrounding
// quotes of a string or the braces/brackets of a container. Token.IsFirst
// and Token.IsLast mark the bookend records of the token array.
//
// # Navigation
//
// Store provides read-only tree navigation over the flat array: Root,
// Parent, Child, PrevSibling, NextSibling, plus the raw sequential Prev and
// Next. Every operation is a linear scan guided by Token.Depth; no
// auxiliary index is built. Tokens are addressed by index, and -1 means
// absent. All navigation operations are total: passing an absent (-1)
// index through any of them yields another absent result rather than
// panicking.
//
// The mu-json/cursor subpackage builds a path-based traversal
// (Cursor.Down) on top of this navigation, for callers who prefer
// addressing object members by key and array elements by index rather than
// walking token-by-token.
//
// # Errors
//
// A failed parse returns 0 and a non-nil error of type *ParseError, whose
// ErrCode is one of BadFormat, NoTokens, or Incomplete. The contents of any
// tokens written before the failure are unspecified and must not be
// inspected.
package mujson
