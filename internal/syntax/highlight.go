package syntax

// Highlight is the category assigned to a single byte.
type Highlight uint8

// Highlight categories.
const (
	Normal Highlight = iota
	Keyword
	String
	Comment
	Number
)

// String returns the string representation of the highlight.
func (h Highlight) String() string {
	switch h {
	case Normal:
		return "normal"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	default:
		return "unknown"
	}
}

// State is the scanner state carried from one line to the next.
type State uint8

const (
	// StateNormal means the next line starts outside any construct.
	StateNormal State = iota

	// StateRawString means the next line starts inside a raw string.
	StateRawString
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateRawString:
		return "raw-string"
	default:
		return "unknown"
	}
}

// IsSeparator reports whether c ends a word.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	case ',', '.', '(', ')', '+', '-', '/', '*', '=', '~', '%', '<', '>', '[', ']', ';':
		return true
	case '{', '}', ':', '!', '&', '|', '^':
		return true
	}
	return false
}
