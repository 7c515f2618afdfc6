package layout

// MaskStrings replaces the contents of interpreted string, rune, and
// raw string literals in expression text with spaces, keeping the
// delimiters and everything outside them in place. Callers scan the
// masked text for structural markers without being fooled by literal
// contents.
func MaskStrings(text string) string {
	out := []byte(text)

	inRaw := false
	var quote byte
	escaped := false

	for i := 0; i < len(out); i++ {
		c := out[i]

		if inRaw {
			if c == '`' {
				inRaw = false
			} else if c != '\n' {
				out[i] = ' '
			}
			continue
		}
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
				out[i] = ' '
			case c == '\\':
				escaped = true
				out[i] = ' '
			case c == quote:
				quote = 0
			default:
				out[i] = ' '
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case '`':
			inRaw = true
		}
	}
	return string(out)
}
