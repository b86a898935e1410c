package tek

import "unicode/utf8"

// splitLines splits source on line boundaries. Both "\r\n" and a bare
// "\n" terminate a line; a lone "\r" (no following "\n") is NOT treated
// as a terminator and is left in place as an ordinary byte — see
// DESIGN.md's resolution of spec.md's "lone \r" open question.
func splitLines(source string) []string {
	lines := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			line := source[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	lines = append(lines, source[start:])
	return lines
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isWordByte(c byte) bool {
	return isLetterByte(c) || isDigitByte(c)
}

// Tokenize converts source text into a token stream, synthesising
// INDENT/OUTDENT/NEWLINE markers per spec.md §4.1. It returns the token
// stream (strictly in source order, EOF last), the comment stream
// captured out-of-band, and any tokenizer diagnostics. A caller should
// not treat a non-empty diagnostics list as fatal — tokens are always a
// best-effort, complete stream.
func Tokenize(source string) ([]Token, []Token, []Diagnostic) {
	sink := newDiagnosticSink(SourceTokenizer)
	lines := splitLines(source)

	var tokens []Token
	var comments []Token
	prevLevel := 0

	for lineIdx, line := range lines {
		i := 0
		for i < len(line) && line[i] == '\t' {
			i++
		}
		level := i

		j := i
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		contentStart := j

		if contentStart == len(line) {
			// Blank (or whitespace-only) line: no tokens, indent unaffected.
			continue
		}

		if line[contentStart] == '#' {
			comments = append(comments, Token{
				Kind:   COMMENT,
				Lexeme: line[contentStart:],
				Span: Span{
					Start: Position{lineIdx, contentStart},
					End:   Position{lineIdx, len(line)},
				},
			})
			continue
		}

		if j > i {
			sink.errorf(
				Span{Position{lineIdx, i}, Position{lineIdx, j}},
				"indentation must use tabs only",
			)
		}

		switch {
		case level > prevLevel:
			n := level - prevLevel
			span := Span{Position{lineIdx, 0}, Position{lineIdx, n}}
			for k := 0; k < n; k++ {
				tokens = append(tokens, Token{Kind: INDENT, Span: span})
			}
		case level < prevLevel:
			n := prevLevel - level
			span := Span{Position{lineIdx, 0}, Position{lineIdx, level}}
			for k := 0; k < n; k++ {
				tokens = append(tokens, Token{Kind: OUTDENT, Span: span})
			}
		}
		prevLevel = level

		tokenizerLog.Tracef("line %d: level=%d content=%q", lineIdx, level, line[contentStart:])

		lineTokens, lineComments := scanLine(line, lineIdx, contentStart, sink)
		tokens = append(tokens, lineTokens...)
		comments = append(comments, lineComments...)
	}

	finalLine := len(lines)
	if prevLevel > 0 {
		span := Span{Position{finalLine, 0}, Position{finalLine, 0}}
		for k := 0; k < prevLevel; k++ {
			tokens = append(tokens, Token{Kind: OUTDENT, Span: span})
		}
	}
	tokens = append(tokens, Token{Kind: EOF, Span: Span{Position{finalLine, 0}, Position{finalLine, 0}}})

	return tokens, comments, sink.diags
}

// scanLine recognises lexemes from contentStart to the end of line,
// following the table in spec.md §4.1.3. It always ends the line with a
// NEWLINE — scanLine is only called for non-blank, non-comment-only
// lines.
func scanLine(line string, lineIdx, contentStart int, sink *diagnosticSink) ([]Token, []Token) {
	var tokens []Token
	var comments []Token

	pos := contentStart
	for pos < len(line) {
		c := line[pos]

		if c == ' ' || c == '\t' {
			pos++
			continue
		}

		if c == '#' {
			comments = append(comments, Token{
				Kind:   COMMENT,
				Lexeme: line[pos:],
				Span:   Span{Position{lineIdx, pos}, Position{lineIdx, len(line)}},
			})
			pos = len(line)
			break
		}

		matchedSymbol := false
		for _, sym := range symbolTable {
			if hasPrefixAt(line, pos, sym.lexeme) {
				end := pos + len(sym.lexeme)
				tokens = append(tokens, Token{
					Kind:   sym.kind,
					Lexeme: sym.lexeme,
					Span:   Span{Position{lineIdx, pos}, Position{lineIdx, end}},
				})
				pos = end
				matchedSymbol = true
				break
			}
		}
		if matchedSymbol {
			continue
		}

		if kind, ok := CHAR_TOKENS[c]; ok {
			tokens = append(tokens, Token{
				Kind:   kind,
				Lexeme: string(c),
				Span:   Span{Position{lineIdx, pos}, Position{lineIdx, pos + 1}},
			})
			pos++
			continue
		}

		if isDigitByte(c) {
			end := scanNumber(line, pos)
			tokens = append(tokens, Token{
				Kind:   NUMBER,
				Lexeme: line[pos:end],
				Span:   Span{Position{lineIdx, pos}, Position{lineIdx, end}},
			})
			pos = end
			continue
		}

		if c == '\'' {
			end, ok := scanString(line, pos)
			if !ok {
				sink.errorf(Span{Position{lineIdx, pos}, Position{lineIdx, len(line)}}, "unterminated string literal")
				pos = len(line)
				break
			}
			tokens = append(tokens, Token{
				Kind:   STRING,
				Lexeme: line[pos:end],
				Span:   Span{Position{lineIdx, pos}, Position{lineIdx, end}},
			})
			pos = end
			continue
		}

		if isLetterByte(c) {
			end := scanWord(line, pos)
			word := line[pos:end]

			if word == "is" {
				if extEnd, kind, ok := matchMultiWord(line, pos); ok {
					tokens = append(tokens, Token{
						Kind:   kind,
						Lexeme: line[pos:extEnd],
						Span:   Span{Position{lineIdx, pos}, Position{lineIdx, extEnd}},
					})
					pos = extEnd
					continue
				}
			}

			span := Span{Position{lineIdx, pos}, Position{lineIdx, end}}
			if msg, bad := bareWordErrors[word]; bad {
				sink.errorf(span, msg)
				pos = end
				continue
			}

			if kind, ok := WORD_TOKENS[word]; ok {
				tokens = append(tokens, Token{Kind: kind, Lexeme: word, Span: span})
			} else {
				tokens = append(tokens, Token{Kind: IDENTIFIER, Lexeme: word, Span: span})
			}
			pos = end
			continue
		}

		r, w := utf8.DecodeRuneInString(line[pos:])
		if w == 0 {
			w = 1
		}
		sink.errorf(Span{Position{lineIdx, pos}, Position{lineIdx, pos + w}}, "unexpected character %q", r)
		pos += w
	}

	tokens = append(tokens, Token{
		Kind: NEWLINE,
		Span: Span{Position{lineIdx, len(line)}, Position{lineIdx, len(line)}},
	})

	return tokens, comments
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	if pos+len(prefix) > len(s) {
		return false
	}
	return s[pos:pos+len(prefix)] == prefix
}

// scanNumber matches \d(\d|_)*(\.\d(\d|_)*)? starting at pos.
func scanNumber(line string, pos int) int {
	i := pos
	for i < len(line) && (isDigitByte(line[i]) || line[i] == '_') {
		i++
	}
	if i < len(line) && line[i] == '.' && i+1 < len(line) && isDigitByte(line[i+1]) {
		i++
		for i < len(line) && (isDigitByte(line[i]) || line[i] == '_') {
			i++
		}
	}
	return i
}

// scanString matches '([^'\\]|\\.)*' starting at pos (pos points at the
// opening quote). Returns the index just past the closing quote, or
// ok=false if the line ends before the string is closed.
func scanString(line string, pos int) (end int, ok bool) {
	i := pos + 1
	for i < len(line) {
		c := line[i]
		if c == '\\' {
			if i+1 < len(line) {
				i += 2
				continue
			}
			i++
			continue
		}
		if c == '\'' {
			return i + 1, true
		}
		i++
	}
	return len(line), false
}

// scanWord matches [A-Za-z_]\w* starting at pos.
func scanWord(line string, pos int) int {
	i := pos + 1
	for i < len(line) && isWordByte(line[i]) {
		i++
	}
	return i
}

// matchMultiWord attempts the extended match is\s+(not|(less|greater)\s+than)
// starting at pos, where line[pos:pos+2] == "is". Internal whitespace must
// be horizontal and on this single line, which is automatic since scanning
// never crosses a line boundary.
func matchMultiWord(line string, pos int) (end int, kind LexicalToken, ok bool) {
	i := pos + len("is")

	wsStart := i
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i == wsStart {
		return 0, 0, false
	}

	wordStart := i
	for i < len(line) && isWordByte(line[i]) {
		i++
	}
	word := line[wordStart:i]

	switch word {
	case "not":
		return i, IS_NOT, true
	case "less", "greater":
		ws2 := i
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i == ws2 {
			return 0, 0, false
		}
		word2Start := i
		for i < len(line) && isWordByte(line[i]) {
			i++
		}
		if line[word2Start:i] != "than" {
			return 0, 0, false
		}
		if word == "less" {
			return i, IS_LESS_THAN, true
		}
		return i, IS_GREATER_THAN, true
	default:
		return 0, 0, false
	}
}
