package syntax

import (
	"path/filepath"
	"strings"
)

// Language describes what the scanner recognizes for one file type.
type Language struct {
	// Name is a short identifier such as "c" or "go".
	Name string

	// Extensions are the file extensions, including the dot.
	Extensions []string

	// LineComment starts a comment running to the end of the line.
	LineComment string

	// RawStringQuote delimits raw strings that may span lines. Zero means
	// the language has none.
	RawStringQuote byte

	keywords map[string]struct{}
}

// NewLanguage creates a language definition.
func NewLanguage(name string, extensions []string, lineComment string, keywords ...string) *Language {
	l := &Language{
		Name:        name,
		Extensions:  extensions,
		LineComment: lineComment,
		keywords:    make(map[string]struct{}, len(keywords)),
	}
	for _, kw := range keywords {
		l.keywords[kw] = struct{}{}
	}
	return l
}

// IsKeyword reports whether word is a keyword of the language.
func (l *Language) IsKeyword(word []byte) bool {
	if l == nil {
		return false
	}
	_, ok := l.keywords[string(word)]
	return ok
}

// Built-in languages.
var (
	C = NewLanguage("c", []string{".c", ".h", ".cpp", ".cc"}, "//",
		"if", "else", "while", "for", "return", "int", "char", "void",
		"struct", "enum", "static", "const", "break", "continue", "switch",
		"case", "default", "sizeof", "typedef",
	)

	Go = func() *Language {
		l := NewLanguage("go", []string{".go"}, "//",
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var",
		)
		l.RawStringQuote = '`'
		return l
	}()
)

var languages = []*Language{C, Go}

// Detect returns the language for filename based on its extension, or nil
// if the file type is not recognized.
func Detect(filename string) *Language {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil
	}
	for _, l := range languages {
		for _, e := range l.Extensions {
			if e == ext {
				return l
			}
		}
	}
	return nil
}
