// Package event is the typed model of every server-to-client event and the
// line decoder that produces it.
//
// Parse is pure: it holds no state between calls and never performs I/O.
// Format is its inverse and exists for fake servers and diagnostics.
package event
