// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	mujson "github.com/wolfgangimig/mu-json"
)

func TestViewSlice(t *testing.T) {
	v := mujson.ViewOfString("hello, world")

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 5, "hello"},
		{7, mujson.End, "world"},
		{-5, mujson.End, "world"},
		{0, -7, "hello"},
		{0, 100, "hello, world"},
		{5, 0, ""},   // out-of-order bounds clamp to empty, not an error
		{100, 200, ""},
	}
	for _, test := range tests {
		got := v.Slice(test.start, test.end).String()
		if got != test.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", test.start, test.end, got, test.want)
		}
	}
}

func TestViewAt(t *testing.T) {
	v := mujson.ViewOfString("ab")
	if b, ok := v.At(0); !ok || b != 'a' {
		t.Errorf("At(0) = (%c, %v), want ('a', true)", b, ok)
	}
	if _, ok := v.At(2); ok {
		t.Error("At(2) should report ok=false")
	}
	if _, ok := v.At(-1); ok {
		t.Error("At(-1) should report ok=false")
	}
}

func TestViewEqual(t *testing.T) {
	a := mujson.ViewOfString("same")
	b := mujson.NewView([]byte("same"))
	if !a.Equal(b) {
		t.Error("Equal should hold for byte-identical views")
	}
	if !a.EqualString("same") {
		t.Error("EqualString should hold for a matching string")
	}
	if a.Equal(mujson.ViewOfString("diff")) {
		t.Error("Equal should not hold for differing views")
	}
}

func TestViewEmpty(t *testing.T) {
	var z mujson.View
	if !z.IsEmpty() {
		t.Error("zero View should be empty")
	}
	if z.Len() != 0 {
		t.Errorf("zero View Len() = %d, want 0", z.Len())
	}
}

func TestViewBytesCopies(t *testing.T) {
	buf := []byte("mutable")
	v := mujson.NewView(buf)
	out := v.Bytes()
	out[0] = 'X'
	if buf[0] != 'm' {
		t.Error("Bytes() must not alias the original backing array")
	}
}

func TestViewBytesCopyIndexPanics(t *testing.T) {
	v := mujson.ViewOfString("x")
	mtest.MustPanic(t, func() {
		_ = v.Slice(0, 1).Bytes()[5] // out-of-range index on the *copy*, not the view, still panics like any slice
	})
}
