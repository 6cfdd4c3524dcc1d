// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson_test

import (
	"testing"

	mujson "github.com/wolfgangimig/mu-json"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind mujson.Kind
		want string
	}{
		{mujson.Object, "Object"},
		{mujson.Array, "Array"},
		{mujson.String, "String"},
		{mujson.Number, "Number"},
		{mujson.True, "True"},
		{mujson.False, "False"},
		{mujson.Null, "Null"},
		{mujson.Kind(99), "Kind(99)"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String() = %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestKindIsContainer(t *testing.T) {
	for _, k := range []mujson.Kind{mujson.Object, mujson.Array} {
		if !k.IsContainer() {
			t.Errorf("%v.IsContainer() = false, want true", k)
		}
	}
	for _, k := range []mujson.Kind{mujson.String, mujson.Number, mujson.True, mujson.False, mujson.Null} {
		if k.IsContainer() {
			t.Errorf("%v.IsContainer() = true, want false", k)
		}
	}
}

func TestFlags(t *testing.T) {
	f := mujson.IsFirst | mujson.IsSealed
	if !f.Has(mujson.IsFirst) {
		t.Error("Has(IsFirst) = false, want true")
	}
	if f.Has(mujson.IsLast) {
		t.Error("Has(IsLast) = true, want false")
	}
	tok := mujson.Token{Flags: f}
	if !tok.IsFirst() || !tok.IsSealed() || tok.IsLast() {
		t.Errorf("Token flag accessors disagree with Flags value %v", f)
	}
}
