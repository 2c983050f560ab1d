package compactstr_test

import (
	"strings"
	"testing"

	"github.com/axiomhq/compactstr"
)

func TestStringBasics(t *testing.T) {
	s := compactstr.New()
	if !s.IsEmpty() {
		t.Fatalf("new String should be empty")
	}
	if s.IsHeapAllocated() {
		t.Fatalf("new String should not be heap allocated")
	}

	if err := s.PushString("hello"); err != nil {
		t.Fatal(err)
	}
	if s.String() != "hello" {
		t.Fatalf("got %q, want hello", s.String())
	}
}

func TestStringFromStatic(t *testing.T) {
	backing := []byte(strings.Repeat("z", 64))
	s, err := compactstr.FromStatic(backing)
	if err != nil {
		t.Fatal(err)
	}
	if s.IsHeapAllocated() {
		t.Fatalf("static-backed String should not be heap allocated")
	}
	if s.Len() != 64 {
		t.Fatalf("len = %d, want 64", s.Len())
	}
}

func TestStringCloneIsCopyOnWrite(t *testing.T) {
	s := compactstr.MustFromString(strings.Repeat("a", 50))
	clone := s.Clone()

	if err := s.PushString("more"); err != nil {
		t.Fatal(err)
	}
	if clone.String() != strings.Repeat("a", 50) {
		t.Fatalf("clone was mutated: %q", clone.String())
	}
	if !clone.Equal(&clone) {
		t.Fatalf("a String should equal itself")
	}
}

func TestStringPushPopRune(t *testing.T) {
	s := compactstr.New()
	if err := s.Push('é'); err != nil {
		t.Fatal(err)
	}
	if err := s.Push('!'); err != nil {
		t.Fatal(err)
	}
	ch, ok, err := s.Pop()
	if err != nil || !ok || ch != '!' {
		t.Fatalf("pop = %q %v %v", ch, ok, err)
	}
	if s.String() != "é" {
		t.Fatalf("s = %q, want é", s.String())
	}
}

func TestStringRemoveInsertRetain(t *testing.T) {
	s := compactstr.MustFromString("Hello World")
	ch, err := s.Remove(5)
	if err != nil || ch != ' ' {
		t.Fatalf("remove = %q %v", ch, err)
	}
	if err := s.InsertString(5, ", "); err != nil {
		t.Fatal(err)
	}
	if s.String() != "Hello, World" {
		t.Fatalf("s = %q", s.String())
	}
	if err := s.Retain(func(r rune) bool { return r != 'l' }); err != nil {
		t.Fatal(err)
	}
	if s.String() != "Heo, Word" {
		t.Fatalf("s = %q", s.String())
	}
}

func TestStringWithCapacityAndShrink(t *testing.T) {
	s, err := compactstr.WithCapacity(1000)
	if err != nil {
		t.Fatal(err)
	}
	if s.Cap() < 1000 {
		t.Fatalf("cap = %d, want at least 1000", s.Cap())
	}
	if err := s.ShrinkTo(0); err != nil {
		t.Fatal(err)
	}
	if s.Cap() < 0 {
		t.Fatalf("cap should never be negative")
	}
}

func TestStringClear(t *testing.T) {
	s := compactstr.MustFromString(strings.Repeat("q", 100))
	s.Clear()
	if !s.IsEmpty() {
		t.Fatalf("s should be empty after Clear")
	}
}
