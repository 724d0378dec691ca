// Package cards tracks which tool card is expanded. Clicking a card
// collapses its siblings and toggles it, so at most one card is open.
package cards

import (
	"errors"
	"fmt"
)

var ErrNoCard = errors.New("cards: no such card")

type Group struct {
	expanded []bool
}

func NewGroup(n int) *Group {
	if n < 0 {
		n = 0
	}
	return &Group{expanded: make([]bool, n)}
}

func (g *Group) Len() int { return len(g.expanded) }

// Click collapses every other card and toggles card i.
func (g *Group) Click(i int) error {
	if i < 0 || i >= len(g.expanded) {
		return fmt.Errorf("%w: %d of %d", ErrNoCard, i, len(g.expanded))
	}
	for j := range g.expanded {
		if j != i {
			g.expanded[j] = false
		}
	}
	g.expanded[i] = !g.expanded[i]
	return nil
}

// Expanded reports whether card i is open. Unknown cards are closed.
func (g *Group) Expanded(i int) bool {
	return i >= 0 && i < len(g.expanded) && g.expanded[i]
}

// Active returns the open card, if any.
func (g *Group) Active() (int, bool) {
	for i, e := range g.expanded {
		if e {
			return i, true
		}
	}
	return -1, false
}
