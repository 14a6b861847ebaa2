// Package protocol owns the text wire contract shared by commands and events.
//
// Ownership boundary:
// - session/resource handles and closed enumerations
// - field codecs (positional and Key=Value)
// - line tokenizing, formatting and the parse error taxonomy
//
// Line shape, both directions:
//
//	<Name> <positional...> [<Key>=<Value> ...]
//
// Outbound lines additionally end with COMMANDTAG=<n>; inbound lines may carry
// a trailing "# comment". Values are never escaped, so string values must be
// single tokens free of whitespace, '#' and '='.
package protocol
