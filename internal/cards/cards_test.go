package cards

import (
	"errors"
	"testing"
)

func TestClickExpandsOnlyOne(t *testing.T) {
	g := NewGroup(3)

	if err := g.Click(1); err != nil {
		t.Fatal(err)
	}
	if err := g.Click(0); err != nil {
		t.Fatal(err)
	}

	want := []bool{true, false, false}
	for i, w := range want {
		if g.Expanded(i) != w {
			t.Errorf("card %d: expected expanded=%v", i+1, w)
		}
	}
	if i, ok := g.Active(); !ok || i != 0 {
		t.Errorf("expected card 1 active, got %d (%v)", i+1, ok)
	}
}

func TestClickTogglesSameCard(t *testing.T) {
	g := NewGroup(3)
	g.Click(2)
	g.Click(2)

	if _, ok := g.Active(); ok {
		t.Error("expected all cards collapsed after a second click")
	}
}

func TestClickOutOfRange(t *testing.T) {
	g := NewGroup(2)
	for _, i := range []int{-1, 2} {
		if err := g.Click(i); !errors.Is(err, ErrNoCard) {
			t.Errorf("click %d: expected ErrNoCard, got %v", i, err)
		}
	}
	if g.Expanded(5) {
		t.Error("unknown card should not be expanded")
	}
}

func TestEmptyGroup(t *testing.T) {
	g := NewGroup(-3)
	if g.Len() != 0 {
		t.Errorf("expected empty group, got %d", g.Len())
	}
	if _, ok := g.Active(); ok {
		t.Error("empty group has no active card")
	}
}
