// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	mujson "github.com/wolfgangimig/mu-json"
)

func mustParse(t *testing.T, input string, capacity int) (*mujson.Store, int) {
	t.Helper()
	buf := make([]mujson.Token, capacity)
	store := mujson.NewStore(buf)
	n, err := mujson.ParseBuffer(store, []byte(input))
	if err != nil {
		t.Fatalf("ParseBuffer(%q) failed: %v", input, err)
	}
	return store, n
}

func TestStoreNavigationBasic(t *testing.T) {
	// indices: 0 {}, 1 "a", 2 111, 3 "b", 4 [], 5 222, 6 true, 7 "c", 8 {}
	store, n := mustParse(t, `{"a":111, "b":[222, true], "c":{}}`, 16)
	if n != 9 {
		t.Fatalf("token count = %d, want 9", n)
	}

	if got := store.Root(5); got != 0 {
		t.Errorf("Root(5) = %d, want 0", got)
	}
	if got := store.Parent(5); got != 4 {
		t.Errorf("Parent(5) = %d, want 4 (the array)", got)
	}
	if got := store.Parent(4); got != 0 {
		t.Errorf("Parent(4) = %d, want 0 (the object)", got)
	}
	if got := store.Parent(0); got != -1 {
		t.Errorf("Parent(root) = %d, want -1", got)
	}
	if got := store.Child(0); got != 1 {
		t.Errorf("Child(object) = %d, want 1", got)
	}
	if got := store.Child(4); got != 5 {
		t.Errorf("Child(array) = %d, want 5", got)
	}
	if got := store.Child(2); got != -1 {
		t.Errorf("Child(number) = %d, want -1 (no children)", got)
	}
	if got := store.NextSibling(1); got != 2 {
		t.Errorf("NextSibling(key a) = %d, want 2 (its value)", got)
	}
	if got := store.NextSibling(2); got != 3 {
		t.Errorf("NextSibling(111) = %d, want 3 (key b)", got)
	}
	if got := store.NextSibling(5); got != 6 {
		t.Errorf("NextSibling(222) = %d, want 6 (true)", got)
	}
	if got := store.NextSibling(4); got != 7 {
		t.Errorf("NextSibling(array) = %d, want 7 (key c)", got)
	}
	if got := store.NextSibling(8); got != -1 {
		t.Errorf("NextSibling(last token) = %d, want -1", got)
	}
	if got := store.PrevSibling(3); got != 2 {
		t.Errorf("PrevSibling(key b) = %d, want 2", got)
	}
	if got := store.PrevSibling(1); got != -1 {
		t.Errorf("PrevSibling(first child) = %d, want -1", got)
	}
	if got := store.Prev(0); got != -1 {
		t.Errorf("Prev(0) = %d, want -1", got)
	}
	if got := store.Next(8); got != -1 {
		t.Errorf("Next(last) = %d, want -1", got)
	}
	if got := store.Next(0); got != 1 {
		t.Errorf("Next(0) = %d, want 1", got)
	}
}

func TestStoreNavigationAbsentIsTotal(t *testing.T) {
	store, _ := mustParse(t, `[1,2,3]`, 8)
	// -1 represents "absent"; every navigation op must be total over it.
	ops := []func(int) int{
		store.Root, store.Parent, store.Child,
		store.PrevSibling, store.NextSibling, store.Prev, store.Next,
	}
	for i, op := range ops {
		if got := op(-1); got != -1 {
			t.Errorf("op[%d](-1) = %d, want -1", i, got)
		}
	}
}

func TestStoreFindKey(t *testing.T) {
	store, _ := mustParse(t, `{"a":1, "b":{"c":2, "d":[3,4]}}`, 16)

	v, ok := store.FindKey(0, "a")
	if !ok || store.At(v).View.String() != "1" {
		t.Errorf("FindKey(root, a) = (%d, %v), want the token for 1", v, ok)
	}
	if _, ok := store.FindKey(0, "nope"); ok {
		t.Error("FindKey(root, nope) should fail")
	}

	b, _ := store.FindKey(0, "b")
	c, ok := store.FindKey(b, "c")
	if !ok || store.At(c).View.String() != "2" {
		t.Errorf("FindKey(b, c) = (%d, %v), want the token for 2", c, ok)
	}

	if _, ok := store.FindKey(0, "c"); ok {
		t.Error("FindKey should not search nested objects")
	}
	d, ok := store.FindKeyDeep(0, "d")
	if !ok || store.At(d).Kind != mujson.Array {
		t.Errorf("FindKeyDeep(root, d) = (%d, %v), want the nested array", d, ok)
	}
}

func TestStoreAtOutOfRangePanics(t *testing.T) {
	store, n := mustParse(t, `true`, 4)
	mtest.MustPanic(t, func() { store.At(n) })
	mtest.MustPanic(t, func() { store.At(-1) })
}

func TestStoreReset(t *testing.T) {
	store, n := mustParse(t, `42`, 4)
	if n != 1 || store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	store.Reset()
	if store.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", store.Len())
	}
	if store.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", store.Cap())
	}
}
