package protocol

// Wire-level constants.
const (
	// CommandTagKey is the attribute every outbound line ends with.
	CommandTagKey = "COMMANDTAG"

	// EventPrefix starts every server-originated event name.
	EventPrefix = "E"

	// CommentMarker starts an inline comment on inbound lines.
	CommentMarker = '#'

	// LineTerminator ends every line in both directions.
	LineTerminator = "\n"

	// MaxLineLength bounds one inbound line in bytes.
	MaxLineLength = 64 * 1024
)

// Connection defaults. The credentials are the server's example account and
// are not safe for production use.
const (
	DefaultControlPort          uint16 = 1234
	DefaultTransportChannelPort uint16 = 1235
	DefaultUsername                    = "user1"
	DefaultPassword                    = "abc"

	DefaultProtocolMajorVersion uint16 = 2
	DefaultProtocolMinorVersion uint16 = 3
)
