// Package page renders the landing page in the terminal with Bubble Tea.
//
// The page stacks four sections under a fixed nav bar:
//
//   - hero: the particle network on a braille canvas and the typing headline
//   - tools: expandable tool cards, at most one open
//   - features: cards that tilt towards the mouse pointer
//   - contact: the footer
//
// Frames are driven by tea.Tick at the configured rate and resizes arrive as
// tea.WindowSizeMsg, so the particle field, the typewriter and the scroller
// all advance on the single Bubble Tea update loop.
//
// # Key Bindings
//
//	1-4       - Jump (smoothly) to Home, Tools, Features, Contact
//	j/k, ↑/↓  - Select a tool card
//	Enter     - Expand or collapse the selected tool card
//	PgUp/PgDn - Scroll half a page
//	Space     - Pause/Resume the particle field
//	R         - Reseed the particle field
//	T         - Cycle colour themes
//	?         - Toggle help
package page
