// Package intelligence is your in-memory playground for Self-Organizing
// Maps — training a 2D lattice of reference vectors until neighboring
// cells come to represent similar regions of a high-dimensional space.
//
// 🚀 What is in here?
//
//	A small, deterministic SOM library that brings together:
//		• Lattice primitives: seeded grid init, row-major indexing, Nudge
//		  as the sole mutation entry point
//		• BMU search: squared-Euclidean scan with a reproducible tie-break
//		• Decay schedules: exponential neighborhood-radius & learning-rate
//		• Update rule: Gaussian neighborhood influence, in-place nudges
//		• Training loop: epochs × samples, epoch hooks, cancellation
//		• Rendering: color maps, grayscale tiles, decay-curve plots
//
// ✨ Why choose it?
//
//   - Deterministic by default – every random source is explicitly seeded;
//     the same seed reproduces the same trained map, bit for bit
//   - Strictly sequential core – each update observes all prior updates,
//     which is what makes the topology self-organize; only a single BMU
//     scan may fan out across goroutines
//   - Sentinel errors everywhere – no panics on user input; match with errors.Is
//
// Under the hood, everything is organized under four subpackages:
//
//	lattice/ — the grid of reference vectors and its fixed geometry
//	som/     — BMU search, decay schedules, update rule, training loop
//	dataset/ — ordered sample sets: random colors, rescaling, CSV decoding
//	render/  — lattice → image conversion and schedule plotting
//
// Quick ASCII example:
//
//	before            after
//	▒▓░█▒░            ██▓▓▒▒
//	█░▒▓░█     ⇒      ██▓▒▒░
//	░█▓▒█░            ▓▓▒▒░░
//
//	random cells self-organize into smooth neighborhoods.
//
// Start with lattice.New, wrap it in som.New, feed dataset.Samples to
// Train, and hand the result to render for a picture.
//
//	go get github.com/antoinehirtz/Math-of-Intelligence
package intelligence
