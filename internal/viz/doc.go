// Package viz provides the terminal front end for the algorithm animations.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view hosting the sort replay, maze walk and fractal zoom
//   - [Canvas]: Braille-based pixel canvas, exposed through the surface
//     contract so the animations draw on it like any other target
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	Tab   - Switch visualization (or 1-3 directly)
//	R     - Reset the current view
//	T     - Cycle color themes
//	S     - Export the canvas as SVG
//	?     - Show help overlay
//
// The braille canvas is 1-bit: draws whose color falls below a luminance
// cutoff are dropped, so dark background fills disappear while bars, walls
// and highlights stay visible. The GUI and snapshot surfaces render the
// same frames in full color.
package viz
