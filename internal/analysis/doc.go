// Package analysis profiles the particle field headlessly.
//
//   - [Profile]: render N frames into a recorder and collect per-frame stats
//   - [Summarize]: mean and spread of visible points and edges
//   - [Spectrum]: power spectrum of a per-frame series, used to find the
//     period at which the rotating cloud repeats its edge density
//
// # Example
//
//	rep := analysis.Profile(field, 4096)
//	fmt.Println(rep.Plot(80, 10))
package analysis
