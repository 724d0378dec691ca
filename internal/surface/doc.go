// Package surface provides drawing surfaces for the particle field.
//
//   - [Braille]: a terminal canvas built from Unicode braille cells, 2x4 dots
//     per cell, rendered with lipgloss colours
//   - [Recorder]: keeps every drawing command for export, profiling and tests
//
// Both implement [particles.Surface].
package surface
