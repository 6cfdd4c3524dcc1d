// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"testing"

	mujson "github.com/wolfgangimig/mu-json"
	"github.com/wolfgangimig/mu-json/cursor"
)

func mustStore(t *testing.T, input string) *mujson.Store {
	t.Helper()
	buf := make([]mujson.Token, 32)
	store := mujson.NewStore(buf)
	if _, err := mujson.ParseBuffer(store, []byte(input)); err != nil {
		t.Fatalf("ParseBuffer(%q) failed: %v", input, err)
	}
	return store
}

func TestCursorDownKeysAndIndexes(t *testing.T) {
	store := mustStore(t, `{"a":{"b":[10,20,30]}}`)
	c := cursor.New(store, 0)
	c.Down("a", "b", 1)
	if err := c.Err(); err != nil {
		t.Fatalf("Down failed: %v", err)
	}
	if got := c.Token().View.String(); got != "20" {
		t.Errorf("Token() = %q, want 20", got)
	}
}

func TestCursorNegativeIndex(t *testing.T) {
	store := mustStore(t, `[1,2,3]`)
	c := cursor.New(store, 0).Down(-1)
	if err := c.Err(); err != nil {
		t.Fatalf("Down(-1) failed: %v", err)
	}
	if got := c.Token().View.String(); got != "3" {
		t.Errorf("Token() = %q, want 3 (last element)", got)
	}
}

func TestCursorMissingKey(t *testing.T) {
	store := mustStore(t, `{"a":1}`)
	c := cursor.New(store, 0).Down("nope")
	if c.Err() == nil {
		t.Fatal("expected an error for a missing key")
	}
	// Once erred, further Down calls are no-ops.
	c.Down("a")
	if c.Index() != 0 {
		t.Errorf("Index() after sticky error = %d, want unchanged (0)", c.Index())
	}
}

func TestCursorUpAndReset(t *testing.T) {
	store := mustStore(t, `{"a":{"b":1}}`)
	c := cursor.New(store, 0).Down("a", "b")
	if err := c.Err(); err != nil {
		t.Fatalf("Down failed: %v", err)
	}
	c.Up()
	if got := c.Token().Kind; got != mujson.Object {
		t.Errorf("after Up, Kind = %v, want Object", got)
	}
	c.Reset()
	if !c.AtOrigin() {
		t.Error("AtOrigin() = false after Reset")
	}
}

func TestCursorUpPastOrigin(t *testing.T) {
	store := mustStore(t, `42`)
	c := cursor.New(store, 0).Up()
	if c.Err() == nil {
		t.Fatal("expected an error walking Up from the root")
	}
}

func TestCursorNilPathElement(t *testing.T) {
	store := mustStore(t, `{"a":1}`)
	c := cursor.New(store, 0).Down(nil, "a", nil)
	if err := c.Err(); err != nil {
		t.Fatalf("Down with nil elements failed: %v", err)
	}
	if got := c.Token().View.String(); got != "1" {
		t.Errorf("Token() = %q, want 1", got)
	}
}

func TestCursorCustomSelector(t *testing.T) {
	store := mustStore(t, `[1,2,3]`)
	firstChild := func(s *mujson.Store, idx int) (int, error) {
		return s.Child(idx), nil
	}
	c := cursor.New(store, 0).Down(firstChild)
	if err := c.Err(); err != nil {
		t.Fatalf("Down with custom selector failed: %v", err)
	}
	if got := c.Token().View.String(); got != "1" {
		t.Errorf("Token() = %q, want 1", got)
	}
}
