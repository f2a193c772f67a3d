// Package app provides a message-driven application model and the
// runtime that executes it. An App declares Init, Update and View over
// its own state and message types; the Runtime owns the loop, turning
// input events and subscription messages into Update calls, executing
// the commands updates return, and rendering each frame into a backend.
//
// Optional capabilities (event handling, tick hooks, quit policy, exit
// hooks) are separate interfaces discovered by type assertion, so an
// app implements only what it needs.
package app
