package syntax

import "bytes"

// Scanner classifies lines for one language. A Scanner with a nil
// language marks everything Normal.
type Scanner struct {
	lang *Language
}

// NewScanner creates a scanner for lang.
func NewScanner(lang *Language) *Scanner {
	return &Scanner{lang: lang}
}

// Language returns the scanner's language, or nil.
func (s *Scanner) Language() *Language {
	return s.lang
}

// Line classifies each byte of line, starting in state st. The returned
// slice has one entry per byte. The returned state is the one the next
// line starts in.
func (s *Scanner) Line(line []byte, st State) ([]Highlight, State) {
	hl := make([]Highlight, len(line))
	if s.lang == nil {
		return hl, StateNormal
	}

	i := 0
	if st == StateRawString {
		end, closed := s.rawString(line, 0, hl)
		if !closed {
			return hl, StateRawString
		}
		i = end
	}

	for i < len(line) {
		c := line[i]

		switch {
		case s.lang.LineComment != "" && bytes.HasPrefix(line[i:], []byte(s.lang.LineComment)):
			for ; i < len(line); i++ {
				hl[i] = Comment
			}

		case c == '"' || c == '\'':
			i = quoted(line, i, hl)

		case s.lang.RawStringQuote != 0 && c == s.lang.RawStringQuote:
			hl[i] = String
			end, closed := s.rawString(line, i+1, hl)
			if !closed {
				return hl, StateRawString
			}
			i = end

		case IsSeparator(c):
			i++

		default:
			start := i
			i++
			for i < len(line) && !IsSeparator(line[i]) && !isQuote(line[i]) {
				i++
			}
			word := line[start:i]
			switch {
			case isDigit(word[0]):
				fill(hl[start:i], Number)
			case s.lang.IsKeyword(word):
				fill(hl[start:i], Keyword)
			}
		}
	}

	return hl, StateNormal
}

// Lines classifies consecutive lines, threading state from the first.
func (s *Scanner) Lines(lines [][]byte) [][]Highlight {
	out := make([][]Highlight, len(lines))
	st := StateNormal
	for i, line := range lines {
		out[i], st = s.Line(line, st)
	}
	return out
}

// rawString marks bytes from i up to and including the closing quote.
// It returns the index after the quote and whether the quote was found.
func (s *Scanner) rawString(line []byte, i int, hl []Highlight) (int, bool) {
	for ; i < len(line); i++ {
		hl[i] = String
		if line[i] == s.lang.RawStringQuote {
			return i + 1, true
		}
	}
	return i, false
}

// quoted marks a quoted string starting at line[i]. An unterminated string
// ends with the line.
func quoted(line []byte, i int, hl []Highlight) int {
	q := line[i]
	hl[i] = String
	i++
	for i < len(line) {
		hl[i] = String
		switch line[i] {
		case '\\':
			if i+1 < len(line) {
				hl[i+1] = String
			}
			i += 2
		case q:
			return i + 1
		default:
			i++
		}
	}
	return len(line)
}

func fill(hl []Highlight, h Highlight) {
	for i := range hl {
		hl[i] = h
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isQuote(c byte) bool {
	return c == '"' || c == '\'' || c == '`'
}
