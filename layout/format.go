// Package layout applies indentation, line-ending, and trailing-comma
// policy to assembled expression text. It is purely syntactic: it
// tracks bracket depth and string literals but knows nothing about the
// values the expression was rendered from.
package layout

import (
	"strings"
)

// FormattingError reports expression text the formatter cannot lay out,
// such as unbalanced brackets or an unterminated string literal.
type FormattingError struct {
	Reason string
}

func (e *FormattingError) Error() string {
	return "layout: " + e.Reason
}

// laid is one output line with the scan state needed by later passes.
type laid struct {
	text      string // content, already indented
	raw       bool   // continuation of a raw string literal: verbatim
	endsInRaw bool   // line ends inside an open raw string literal
}

// Format re-indents expr according to the profile, normalizes line
// endings, optionally trims trailing whitespace per line, inserts
// trailing commas after the last element of multi-line literals, and
// ensures a single final newline when configured.
//
// Format is idempotent: Format(Format(x)) == Format(x).
func Format(expr string, profile Profile) (string, error) {
	lines := splitLines(expr)

	// drop trailing blank lines so the final-newline policy is exact
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]laid, 0, len(lines))
	unit := profile.indentUnit()
	depth := 0
	inRaw := false

	for _, line := range lines {
		if inRaw {
			// raw string continuation is emitted byte for byte
			sc := scanLine(line, true)
			out = append(out, laid{text: line, raw: true, endsInRaw: sc.endsInRaw})
			depth += sc.opens - sc.closes
			inRaw = sc.endsInRaw
			continue
		}

		trimmed := strings.TrimSpace(line)
		sc := scanLine(trimmed, false)
		if sc.unterminated {
			return "", &FormattingError{Reason: "unterminated string literal"}
		}

		indent := depth - sc.leadingClosers
		if indent < 0 {
			return "", &FormattingError{Reason: "unbalanced brackets"}
		}

		text := trimmed
		if text != "" {
			text = strings.Repeat(unit, indent) + text
		}
		if profile.TrimTrailingWhitespace {
			text = strings.TrimRight(text, " \t")
		}

		out = append(out, laid{text: text, endsInRaw: sc.endsInRaw})
		depth += sc.opens - sc.closes
		inRaw = sc.endsInRaw
	}

	if depth != 0 {
		return "", &FormattingError{Reason: "unbalanced brackets"}
	}
	if inRaw {
		return "", &FormattingError{Reason: "unterminated string literal"}
	}

	// trailing commas: a line directly followed by a closing-bracket
	// line must end with a comma, unless it opens the bracket itself
	// or ends inside an open raw string
	for i := range out {
		if out[i].endsInRaw || strings.TrimSpace(out[i].text) == "" {
			continue
		}
		next, ok := nextContent(out, i)
		if !ok || !startsWithCloser(next) {
			continue
		}
		if needsTrailingComma(out[i].text) {
			out[i].text += ","
		}
	}

	parts := make([]string, len(out))
	for i, l := range out {
		parts[i] = l.text
	}

	term := profile.terminator()
	result := strings.Join(parts, term)
	if profile.InsertFinalNewline && result != "" {
		result += term
	}
	return result, nil
}

// splitLines normalizes CRLF and lone CR terminators and splits.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// nextContent returns the first non-blank, non-raw line after index i.
func nextContent(lines []laid, i int) (string, bool) {
	for j := i + 1; j < len(lines); j++ {
		if lines[j].raw {
			return "", false
		}
		if t := strings.TrimSpace(lines[j].text); t != "" {
			return t, true
		}
	}
	return "", false
}

func startsWithCloser(trimmed string) bool {
	switch trimmed[0] {
	case ')', ']', '}':
		return true
	}
	return false
}

// needsTrailingComma reports whether a line preceding a closer line must
// gain a comma: it must not already end with one and must not itself
// open the bracket being closed.
func needsTrailingComma(text string) bool {
	t := strings.TrimRight(text, " \t")
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case ',', '(', '[', '{':
		return false
	}
	return true
}

// scanResult summarizes the bracket and string-literal structure of one
// line of expression text.
type scanResult struct {
	opens          int
	closes         int
	leadingClosers int
	endsInRaw      bool
	unterminated   bool
}

// scanLine walks one line, skipping interpreted string and rune
// literals, tracking raw-string state across lines when startInRaw is
// set. leadingClosers counts closing brackets that appear before any
// other significant character.
func scanLine(line string, startInRaw bool) scanResult {
	var res scanResult

	inRaw := startInRaw
	var quote byte // 0, '"' or '\''
	escaped := false
	leading := true

	for i := 0; i < len(line); i++ {
		c := line[i]

		if inRaw {
			if c == '`' {
				inRaw = false
			}
			continue
		}
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
			leading = false
		case '`':
			inRaw = true
			leading = false
		case '(', '[', '{':
			res.opens++
			leading = false
		case ')', ']', '}':
			res.closes++
			if leading {
				res.leadingClosers++
			}
		case ' ', '\t':
			// whitespace keeps the leading-closer run alive
		default:
			leading = false
		}
	}

	res.endsInRaw = inRaw
	res.unterminated = quote != 0
	return res
}
