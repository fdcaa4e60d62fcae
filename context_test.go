package alttex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
)

func TestCommandStack(t *testing.T) {
	var s alttex.CommandStack

	s.Push("sum")
	s.Raise()

	leave := s.Scope()
	s.Push("frac")

	if s.Top() != "frac" || s.Raised() {
		t.Errorf("Inner scope must see its own command, got %q raised=%v", s.Top(), s.Raised())
	}

	s.Pop()
	s.Pop()

	if s.Top() != "sum" {
		t.Errorf("Pop must not cross the scope floor, top is %q", s.Top())
	}

	s.Push("sqrt")
	leave()

	if s.Top() != "sum" || !s.Raised() || s.Len() != 1 {
		t.Errorf("Leaving the scope must restore outer command, got %q raised=%v len=%d", s.Top(), s.Raised(), s.Len())
	}

	s.Pop()
	s.Pop()

	if s.Top() != "" || s.Len() != 0 {
		t.Errorf("Stack must be empty, got %q", s.Top())
	}
}

func TestEnvironmentStack(t *testing.T) {
	var e alttex.EnvironmentStack

	e.Push("cases")
	e.Push("aligned")

	if e.InArray() {
		t.Error("aligned is not an array environment")
	}

	e.Pop("aligned")

	if !e.InArray() || e.Top() != "cases" {
		t.Errorf("Expected to be back in cases, got %q", e.Top())
	}

	e.Pop("matrix")
	e.Pop("cases")

	if e.Top() != "" {
		t.Errorf("Expected empty stack, got %q", e.Top())
	}
}

func TestAccumulator(t *testing.T) {
	var a alttex.Accumulator

	a.InsertBeforeLast("first")
	a.Add("a", "b")
	a.InsertBeforeLast("x")

	if diff := cmp.Diff([]string{"first", "a", "x", "b"}, a.Fragments()); diff != "" {
		t.Errorf("Fragments do not match (-want +got):\n%s", diff)
	}

	a.Retract()
	a.Add("  spaced \t out ")

	if got := a.String(); got != "first a x spaced out" {
		t.Errorf("Unexpected text: %q", got)
	}

	if a.Len() != 4 {
		t.Errorf("Expected 4 fragments, got %d", a.Len())
	}
}
