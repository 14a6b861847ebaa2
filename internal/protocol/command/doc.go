// Package command is the typed model of every client-to-server command and its
// canonical line encoding.
//
// Each command kind is a struct holding only its own fields. Required fields
// render positionally in a fixed order; optional fields are pointers that
// render as Key=Value when non-nil. Constructors (NewCallMake, NewLogin, ...)
// apply documented defaults, so a constructed command already carries its
// effective values and Encode never invents any.
//
// Encode returns the line without the COMMANDTAG suffix or terminator; tagging
// and transmission belong to the client.
package command
