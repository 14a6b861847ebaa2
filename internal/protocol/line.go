package protocol

import "strings"

// Tokenize drops everything from the first '#' and splits the rest on
// whitespace. A nil result means the line carries nothing to parse.
func Tokenize(line string) []string {
	if i := strings.IndexByte(line, CommentMarker); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

// FormatLine renders name, the positional fields and every present named field
// as one space-separated line without a terminator.
func FormatLine(name string, fields Fields) string {
	var b strings.Builder
	b.WriteString(name)
	for _, f := range fields.Positional {
		b.WriteByte(' ')
		b.WriteString(f.Format())
	}
	for _, n := range fields.Named {
		if !n.Field.Present() {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(n.Key)
		b.WriteByte('=')
		b.WriteString(n.Field.Format())
	}
	return b.String()
}

// SplitAttribute splits a Key=Value token. The token must contain exactly one
// '=' and a non-empty key.
func SplitAttribute(token string) (string, string, error) {
	if strings.Count(token, "=") != 1 {
		return "", "", errNotAttribute
	}
	key, value, _ := strings.Cut(token, "=")
	if key == "" {
		return "", "", errEmptyToken
	}
	return key, value, nil
}

// ParseFields fills fields from tokens, where tokens[0] is the line name.
// Positional tokens are consumed in order; every remaining token is an
// attribute matched case-insensitively against the named fields. Unknown keys
// are ignored and a repeated key overwrites the earlier value.
func ParseFields(tokens []string, fields Fields) error {
	if len(tokens) == 0 {
		return NewWrongArityError("")
	}
	name := tokens[0]
	args := tokens[1:]
	if len(args) < len(fields.Positional) {
		return NewWrongArityError(name)
	}
	for i, f := range fields.Positional {
		if err := f.Parse(args[i]); err != nil {
			return NewBadValueError(args[i], err)
		}
	}

	rest := args[len(fields.Positional):]
	if len(rest) == 0 {
		return nil
	}
	known := make(map[string]OptionalField, len(fields.Named))
	for _, n := range fields.Named {
		known[strings.ToLower(n.Key)] = n.Field
	}
	for _, token := range rest {
		key, value, err := SplitAttribute(token)
		if err != nil {
			return NewBadValueError(token, err)
		}
		f, ok := known[strings.ToLower(key)]
		if !ok {
			continue
		}
		if err := f.Parse(value); err != nil {
			return NewBadValueError(token, err)
		}
	}
	return nil
}
