package syntax

import (
	"strings"
	"testing"
)

// codes renders highlights one letter per byte: . keyword string comment number.
func codes(hl []Highlight) string {
	var sb strings.Builder
	for _, h := range hl {
		switch h {
		case Keyword:
			sb.WriteByte('k')
		case String:
			sb.WriteByte('s')
		case Comment:
			sb.WriteByte('c')
		case Number:
			sb.WriteByte('n')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		expected *Language
	}{
		{"main.c", C},
		{"buffer.h", C},
		{"editor.cpp", C},
		{"editor.cc", C},
		{"MAIN.C", C},
		{"main.go", Go},
		{"notes.txt", nil},
		{"Makefile", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.name); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScannerC(t *testing.T) {
	sc := NewScanner(C)

	tests := []struct {
		line     string
		expected string
	}{
		{"int x = 10;", "kkk.....nn."},
		{"return;", "kkkkkk."},
		{"if(a>3)", "kk...n."},
		{"format", "......"},
		{"ifx", "..."},
		{"x1 = 2", ".....n"},
		{`s = "a;b";`, `....sssss.`},
		{`"a\"b"`, `ssssss`},
		{"a // int 5", "..cccccccc"},
		{`"//" x`, `ssss..`},
		{"0x1F+7", "nnnn.n"},
		{"struct{int}", "kkkkkk.kkk."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			hl, st := sc.Line([]byte(tt.line), StateNormal)
			if got := codes(hl); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if st != StateNormal {
				t.Errorf("expected normal state, got %v", st)
			}
		})
	}
}

func TestStringResetsAtLineEnd(t *testing.T) {
	sc := NewScanner(C)

	hl, st := sc.Line([]byte(`char *s = "open`), StateNormal)
	if codes(hl) != "kkkk......sssss" {
		t.Errorf("unexpected highlights %q", codes(hl))
	}
	if st != StateNormal {
		t.Errorf("quoted string must not carry over, got %v", st)
	}

	hl, _ = sc.Line([]byte("return 0;"), st)
	if codes(hl) != "kkkkkk.n." {
		t.Errorf("unexpected highlights %q", codes(hl))
	}
}

func TestGoRawString(t *testing.T) {
	sc := NewScanner(Go)

	hl, st := sc.Line([]byte("var s = `one"), StateNormal)
	if codes(hl) != "kkk.....ssss" {
		t.Errorf("unexpected highlights %q", codes(hl))
	}
	if st != StateRawString {
		t.Fatalf("expected raw string state, got %v", st)
	}

	hl, st = sc.Line([]byte("if 1"), st)
	if codes(hl) != "ssss" || st != StateRawString {
		t.Errorf("unexpected highlights %q (%v)", codes(hl), st)
	}

	hl, st = sc.Line([]byte("end` + func"), st)
	if codes(hl) != "ssss...kkkk" {
		t.Errorf("unexpected highlights %q", codes(hl))
	}
	if st != StateNormal {
		t.Errorf("expected normal state, got %v", st)
	}
}

func TestBackquoteInC(t *testing.T) {
	sc := NewScanner(C)

	hl, st := sc.Line([]byte("a`if"), StateNormal)
	if codes(hl) != "...." || st != StateNormal {
		t.Errorf("unexpected highlights %q (%v)", codes(hl), st)
	}
}

func TestNilLanguage(t *testing.T) {
	sc := NewScanner(Detect("notes.txt"))

	hl, st := sc.Line([]byte(`if "x" // 1`), StateRawString)
	if codes(hl) != strings.Repeat(".", 11) || st != StateNormal {
		t.Errorf("unexpected highlights %q (%v)", codes(hl), st)
	}
}

func TestLines(t *testing.T) {
	sc := NewScanner(Go)
	lines := [][]byte{
		[]byte("x := `a"),
		[]byte("b`"),
		[]byte("for"),
	}

	out := sc.Lines(lines)
	expected := []string{".....ss", "ss", "kkk"}
	for i, hl := range out {
		if codes(hl) != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], codes(hl))
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(" \t,.()+-/*=~%<>[];{}") {
		if !IsSeparator(c) {
			t.Errorf("expected %q to be a separator", c)
		}
	}
	for _, c := range []byte("az09_#") {
		if IsSeparator(c) {
			t.Errorf("expected %q not to be a separator", c)
		}
	}
}

func TestHighlightString(t *testing.T) {
	tests := map[Highlight]string{
		Normal:        "normal",
		Keyword:       "keyword",
		String:        "string",
		Comment:       "comment",
		Number:        "number",
		Highlight(99): "unknown",
	}
	for h, expected := range tests {
		if h.String() != expected {
			t.Errorf("expected %q, got %q", expected, h.String())
		}
	}
}
