// Package backend provides rendering surfaces for terminal applications.
//
// The central type is CaptureBackend, an in-memory grid that records
// everything drawn to it. Captured content can be inspected cell by
// cell, searched for text, rendered as plain text, ANSI or JSON, and
// snapshotted into a bounded frame history for diffing across frames.
package backend
