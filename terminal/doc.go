// Package terminal provides double-buffered drawing on top of a
// rendering backend. A Terminal hands render callbacks a working Frame
// and forwards only changed cells to the backend on each draw.
package terminal
