package tek

import "github.com/juju/errors"

// Parser is a cursor over a finished token stream. It allocates nothing
// beyond the AST it builds and the diagnostics it reports — the same
// discipline the teacher's own Parser cursor (Current/Match/Peek/Consume)
// follows, generalised here from template-tag scanning to a full
// statement/expression grammar with panic-mode recovery.
type Parser struct {
	tokens []Token
	idx    int
	sink   *diagnosticSink
}

func newParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, sink: newDiagnosticSink(SourceParser)}
}

// Parse consumes a finished token stream (ending in EOF) and returns the
// resulting Program together with any parser diagnostics. Parse is a
// pure function of its input, per spec.md §8.1's determinism invariant.
func Parse(tokens []Token) (*Program, []Diagnostic) {
	p := newParser(tokens)
	parserLog.Tracef("parsing %d tokens", len(tokens))
	start := p.current().Span

	var body []Node
	for !p.check(EOF) {
		p.ignoreNewline()
		if p.check(EOF) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			p.syncToNextStatement()
			continue
		}
		if stmt != nil {
			body = append(body, stmt)
		}
	}

	end := start
	if len(body) > 0 {
		end = body[len(body)-1].Span()
	}
	span := start
	if !end.End.Before(span.Start) {
		span = Span{start.Start, end.End}
	}
	return newProgram(span, body), p.sink.diags
}

func (p *Parser) current() Token {
	return p.get(p.idx)
}

func (p *Parser) get(i int) Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1]
	}
	return Token{Kind: EOF}
}

func (p *Parser) peekN(n int) Token {
	return p.get(p.idx + n)
}

func (p *Parser) advance() Token {
	t := p.current()
	if !p.check(EOF) {
		p.idx++
	}
	return t
}

func (p *Parser) check(kind LexicalToken) bool {
	return p.current().Kind == kind
}

func (p *Parser) checkN(n int, kind LexicalToken) bool {
	return p.peekN(n).Kind == kind
}

// match consumes and returns the current token if it has kind, otherwise
// leaves the cursor untouched and returns false.
func (p *Parser) match(kind LexicalToken) (Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	return Token{}, false
}

// expect consumes a token of kind or reports a diagnostic (optionally
// with related info spans) and returns ok=false.
func (p *Parser) expect(kind LexicalToken, message string, info ...DiagnosticInfo) (Token, bool) {
	if t, ok := p.match(kind); ok {
		return t, true
	}
	p.sink.report(ERROR, message, p.current().Span, info...)
	return Token{}, false
}

// ignoreNewline skips any run of NEWLINEs at the cursor.
func (p *Parser) ignoreNewline() {
	for p.check(NEWLINE) {
		p.advance()
	}
}

// matchIgnoreNewline looks past a run of NEWLINEs; if the token that
// follows matches kind, both the newlines and that token are consumed.
// Otherwise the cursor is left untouched.
func (p *Parser) matchIgnoreNewline(kind LexicalToken) (Token, bool) {
	n := 0
	for p.peekN(n).Kind == NEWLINE {
		n++
	}
	if p.peekN(n).Kind != kind {
		return Token{}, false
	}
	for i := 0; i <= n; i++ {
		p.advance()
	}
	return p.tokens[p.idx-1], true
}

// syncToNextStatement implements panic-mode recovery (spec.md §4.2.7,
// §9 "Error recovery"): advance to the next NEWLINE or closing bracket of
// the enclosing construct, then resume statement parsing from there.
func (p *Parser) syncToNextStatement() {
	depth := 0
	for {
		switch p.current().Kind {
		case EOF:
			return
		case LPAREN, LBRACKET, LBRACE, INDENT:
			depth++
			p.advance()
			continue
		case RPAREN, RBRACKET, RBRACE, OUTDENT:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
			continue
		case NEWLINE:
			if depth == 0 {
				p.advance()
				return
			}
			p.advance()
			continue
		}
		p.advance()
	}
}

// errAt is a small helper for constructing juju/errors-wrapped internal
// failures (distinct from Diagnostics) that a caller embedding the parser
// as a library might want annotated with a location.
func errAt(span Span, format string, args ...any) error {
	return errors.Annotatef(errors.Errorf(format, args...), "at %s", span)
}
