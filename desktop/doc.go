// Package desktop runs a match in an ebiten window: keyboard polling for both
// players, a variable-dt wall clock and a Surface backed by the screen image.
// The window is resizable and the court follows its size.
package desktop
