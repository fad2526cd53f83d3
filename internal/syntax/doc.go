// Package syntax classifies the bytes of a line into highlight categories.
//
// Classification is a lightweight approximation rather than a tokenizer:
// keywords are whole words bounded by separators, numbers are words that
// begin with a digit, "//" starts a comment that runs to the end of the line,
// and quoted text is a string.
//
// Scanner state is explicit. Line takes the state left by the previous line
// and returns the state for the next one. Quoted strings never carry across
// a line break; only languages with raw multi-line strings (Go backquotes)
// produce a non-normal state at the end of a line.
//
//	sc := syntax.NewScanner(syntax.Detect("main.c"))
//	st := syntax.StateNormal
//	for _, line := range lines {
//		var hl []syntax.Highlight
//		hl, st = sc.Line(line, st)
//		draw(line, hl)
//	}
package syntax
