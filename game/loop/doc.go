// Package loop provides frame drivers for the Pong engine outside a window:
// clocks, input sources, a headless surface and a Runner that calls Update
// then Render once per frame at a fixed or variable cadence.
package loop
