// Package launcher turns a tool id into a navigation target and dispatches
// it to an Opener, the environment's "open in a new execution context"
// primitive. Launches are fire-and-forget: Launch validates the tool, starts
// the opener on its own goroutine and returns without waiting for it.
package launcher
