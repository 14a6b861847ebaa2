// Package client owns the control connection to the media server.
//
// Ownership boundary:
// - one TCP connection per Connect, with its correlation tag counter
// - the single background listener that decodes inbound lines
// - serialized, whole-line command writes
//
// Writers share one mutex that covers both tag allocation and the socket
// write, so a tag is consumed only by a line that was fully written. A failed
// write drops the connection, since a partial line may already be on the wire.
// Connection state sits behind a second, short-held mutex, so Disconnect can
// close a socket that a writer is blocked on. The listener is the only reader
// and delivers Items in wire order on a channel that is created per connection
// and closed when the listener exits.
// Disconnect and Close return only after the listener has stopped.
//
// Tags are attached for server-side diagnostics; no response is correlated
// back to a sender.
package client
