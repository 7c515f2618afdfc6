package layout

// IndentStyle selects the indentation character.
type IndentStyle int

const (
	IndentTab IndentStyle = iota
	IndentSpace
)

// LineEnding selects the emitted line terminator.
type LineEnding int

const (
	EndingLF LineEnding = iota
	EndingCRLF
)

// Profile describes the purely syntactic layout of generated source.
type Profile struct {
	IndentStyle            IndentStyle
	IndentWidth            int // spaces per level; ignored for IndentTab
	LineEnding             LineEnding
	InsertFinalNewline     bool
	TrimTrailingWhitespace bool
}

// DefaultProfile returns the gofmt-like layout: tabs, LF, trimmed
// trailing whitespace, single final newline.
func DefaultProfile() Profile {
	return Profile{
		IndentStyle:            IndentTab,
		IndentWidth:            1,
		LineEnding:             EndingLF,
		InsertFinalNewline:     true,
		TrimTrailingWhitespace: true,
	}
}

// indentUnit returns the text of one indentation level.
func (p Profile) indentUnit() string {
	if p.IndentStyle == IndentSpace {
		width := p.IndentWidth
		if width <= 0 {
			width = 4
		}
		out := make([]byte, width)
		for i := range out {
			out[i] = ' '
		}
		return string(out)
	}
	return "\t"
}

// terminator returns the configured line terminator text.
func (p Profile) terminator() string {
	if p.LineEnding == EndingCRLF {
		return "\r\n"
	}
	return "\n"
}
