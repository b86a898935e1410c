package tek

// Precedence levels, low to high, per spec.md §4.2.2. parsePrecedence(level)
// consumes a prefix form at OP12 then greedily consumes infix forms whose
// precedence is >= level, binding left-associatively except for OP8
// (exponent) and OP1 (assignment), which are right-associative.
const (
	OP1  = 1 // assignment            =
	OP2  = 2 // logical or            or
	OP3  = 3 // logical and           and
	OP4  = 4 // equality              ==, !=, is, is not
	OP5  = 5 // comparison            <, <=, >, >=, is less than, is greater than
	OP6  = 6 // additive              +, -
	OP7  = 7 // multiplicative        *, /, %
	OP8  = 8 // exponent              **
	OP9  = 9 // unary prefix          -, not
	OP10 = 10
	OP11 = 11 // call / index / member ( ), [ ], .
	OP12 = 12 // atom
)

type prefixParseFn func(p *Parser) (Node, error)
type infixParseFn func(p *Parser, left Node) (Node, error)

type precedenceRule struct {
	prefix prefixParseFn
	infix  infixParseFn
	prec   int
}

// precedenceTable is a value, not a set of virtual methods: each token
// kind maps to an optional prefix parser, an optional infix parser, and
// the infix parser's binding precedence. This is the Pratt table spec.md
// §9 calls for, generalised from the teacher's hand-written chain of
// parseRelationalExpression/parseSimpleExpression/parseTerm/parsePower
// into a single table-driven parsePrecedence.
var precedenceTable map[LexicalToken]precedenceRule

func init() {
	precedenceTable = map[LexicalToken]precedenceRule{
		NUMBER:     {prefix: parseLiteral},
		STRING:     {prefix: parseLiteral},
		TRUE:       {prefix: parseLiteral},
		FALSE:      {prefix: parseLiteral},
		NULL:       {prefix: parseLiteral},
		IDENTIFIER: {prefix: parseIdentifierExpr},
		THIS:       {prefix: parseThis},
		SUPER:      {prefix: parseSuper},
		LPAREN:     {prefix: parseWrapped, infix: parseCall, prec: OP11},
		LBRACKET:   {prefix: parseArray, infix: parseIndex, prec: OP11},
		LBRACE:     {prefix: parseObject},
		NEW:        {prefix: parseNew},
		ASYNC:      {prefix: parseAsync},
		MINUS:      {prefix: parseUnary, infix: parseBinaryLeft(MINUS, OP6), prec: OP6},
		NOT:        {prefix: parseUnary},

		DOT:        {infix: parseMember, prec: OP11},
		INSTANCEOF: {infix: parseInstanceOf, prec: OP10},

		ASSIGN: {infix: parseBinaryRight(ASSIGN, OP1), prec: OP1},
		OR:     {infix: parseBinaryLeft(OR, OP2), prec: OP2},
		AND:    {infix: parseBinaryLeft(AND, OP3), prec: OP3},

		EQUAL_EQUAL: {infix: parseBinaryLeft(EQUAL_EQUAL, OP4), prec: OP4},
		BANG_EQUAL:  {infix: parseBinaryLeft(BANG_EQUAL, OP4), prec: OP4},
		IS:          {infix: parseBinaryLeft(IS, OP4), prec: OP4},
		IS_NOT:      {infix: parseBinaryLeft(IS_NOT, OP4), prec: OP4},

		LESS:            {infix: parseBinaryLeft(LESS, OP5), prec: OP5},
		LESS_EQUAL:      {infix: parseBinaryLeft(LESS_EQUAL, OP5), prec: OP5},
		GREATER:         {infix: parseBinaryLeft(GREATER, OP5), prec: OP5},
		GREATER_EQUAL:   {infix: parseBinaryLeft(GREATER_EQUAL, OP5), prec: OP5},
		IS_LESS_THAN:    {infix: parseBinaryLeft(IS_LESS_THAN, OP5), prec: OP5},
		IS_GREATER_THAN: {infix: parseBinaryLeft(IS_GREATER_THAN, OP5), prec: OP5},

		PLUS: {infix: parseBinaryLeft(PLUS, OP6), prec: OP6},

		STAR:    {infix: parseBinaryLeft(STAR, OP7), prec: OP7},
		SLASH:   {infix: parseBinaryLeft(SLASH, OP7), prec: OP7},
		PERCENT: {infix: parseBinaryLeft(PERCENT, OP7), prec: OP7},

		STAR_STAR: {infix: parseBinaryRight(STAR_STAR, OP8), prec: OP8},
	}
}

// parseExpression is the parser's single entry point into the precedence
// ladder, starting at the loosest level (assignment).
func (p *Parser) parseExpression() (Node, error) {
	return p.parsePrecedence(OP1)
}

func (p *Parser) parsePrecedence(level int) (Node, error) {
	tok := p.current()
	rule, ok := precedenceTable[tok.Kind]
	if !ok || rule.prefix == nil {
		p.sink.report(ERROR, "expected an expression, found "+tok.Kind.String(), tok.Span)
		return nil, errAt(tok.Span, "expected expression")
	}

	left, err := rule.prefix(p)
	if err != nil {
		return nil, err
	}

	for {
		tok = p.current()
		rule, ok = precedenceTable[tok.Kind]
		if !ok || rule.infix == nil || rule.prec < level {
			break
		}
		left, err = rule.infix(p, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseBinaryLeft builds a left-associative infix parser: the right
// operand is parsed one precedence level tighter than the operator's own,
// so a run of equal-precedence operators groups to the left.
func parseBinaryLeft(op LexicalToken, prec int) infixParseFn {
	return func(p *Parser, left Node) (Node, error) {
		opTok := p.advance()
		right, err := p.parsePrecedence(prec + 1)
		if err != nil {
			return nil, err
		}
		span := left.Span().Cover(right.Span())
		return &Binary{base{nodeBinary, span}, opTok.Kind, left, right}, nil
	}
}

// parseBinaryRight builds a right-associative infix parser (assignment,
// exponent): the right operand is parsed at the operator's own level, so
// a run of equal-precedence operators groups to the right.
func parseBinaryRight(op LexicalToken, prec int) infixParseFn {
	return func(p *Parser, left Node) (Node, error) {
		opTok := p.advance()
		if op == ASSIGN {
			switch left.(type) {
			case *Identifier, *Member, *Index:
			default:
				p.sink.report(ERROR, "left-hand side of '=' must be an identifier, member, or index expression", left.Span())
			}
		}
		right, err := p.parsePrecedence(prec)
		if err != nil {
			return nil, err
		}
		span := left.Span().Cover(right.Span())
		return &Binary{base{nodeBinary, span}, opTok.Kind, left, right}, nil
	}
}

func parseLiteral(p *Parser) (Node, error) {
	t := p.advance()
	return &Literal{base{nodeLiteral, t.Span}, t.Kind, t.Lexeme}, nil
}

func parseIdentifierExpr(p *Parser) (Node, error) {
	t := p.advance()
	return &Identifier{base{nodeIdentifier, t.Span}, t.Lexeme}, nil
}

func parseThis(p *Parser) (Node, error) {
	t := p.advance()
	return &This{base{nodeThis, t.Span}}, nil
}

func parseSuper(p *Parser) (Node, error) {
	t := p.advance()
	return &Super{base{nodeSuper, t.Span}}, nil
}

func parseWrapped(p *Parser) (Node, error) {
	open := p.advance() // '('
	p.ignoreNewline()
	inner, err := p.parsePrecedence(OP1)
	if err != nil {
		return nil, err
	}
	p.ignoreNewline()
	closeTok, ok := p.expect(RPAREN, "expected ')' to close parenthesised expression",
		DiagnosticInfo{"opening '(' is here", open.Span})
	end := inner.Span().End
	if ok {
		end = closeTok.Span.End
	}
	return &Wrapped{base{nodeWrapped, Span{open.Span.Start, end}}, inner}, nil
}

func parseArray(p *Parser) (Node, error) {
	open := p.advance() // '['
	var elems []Node
	p.ignoreNewline()
	if !p.check(RBRACKET) {
		for {
			p.ignoreNewline()
			e, err := p.parsePrecedence(OP1)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			p.ignoreNewline()
			if _, ok := p.match(COMMA); !ok {
				break
			}
		}
	}
	p.ignoreNewline()
	closeTok, ok := p.expect(RBRACKET, "expected ']' to close array literal",
		DiagnosticInfo{"opening '[' is here", open.Span})
	end := open.Span.End
	if ok {
		end = closeTok.Span.End
	}
	return &Array{base{nodeArray, Span{open.Span.Start, end}}, elems}, nil
}

func parseObject(p *Parser) (Node, error) {
	open := p.advance() // '{'
	var props []ObjectProperty
	p.ignoreNewline()
	if !p.check(RBRACE) {
		for {
			p.ignoreNewline()
			keyTok, ok := p.expect(IDENTIFIER, "expected property name in object literal")
			if !ok {
				return nil, errAt(p.current().Span, "malformed object literal key")
			}
			p.ignoreNewline()
			if _, ok := p.expect(COLON, "expected ':' after object property name"); !ok {
				return nil, errAt(p.current().Span, "malformed object literal")
			}
			p.ignoreNewline()
			val, err := p.parsePrecedence(OP1)
			if err != nil {
				return nil, err
			}
			props = append(props, ObjectProperty{keyTok.Lexeme, val})
			p.ignoreNewline()
			if _, ok := p.match(COMMA); !ok {
				break
			}
		}
	}
	p.ignoreNewline()
	closeTok, ok := p.expect(RBRACE, "expected '}' to close object literal",
		DiagnosticInfo{"opening '{' is here", open.Span})
	end := open.Span.End
	if ok {
		end = closeTok.Span.End
	}
	return &Object{base{nodeObject, Span{open.Span.Start, end}}, props}, nil
}

func parseUnary(p *Parser) (Node, error) {
	opTok := p.advance() // '-' or 'not'
	operand, err := p.parsePrecedence(OP9)
	if err != nil {
		return nil, err
	}
	return &Unary{base{nodeUnary, Span{opTok.Span.Start, operand.Span().End}}, opTok.Kind, operand}, nil
}

func parseCall(p *Parser, left Node) (Node, error) {
	open := p.advance() // '('
	var args []Node
	p.ignoreNewline()
	if !p.check(RPAREN) {
		for {
			p.ignoreNewline()
			arg, err := p.parsePrecedence(OP1)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			p.ignoreNewline()
			if _, ok := p.match(COMMA); !ok {
				break
			}
		}
	}
	p.ignoreNewline()
	closeTok, ok := p.expect(RPAREN, "expected ')' after call arguments",
		DiagnosticInfo{"call opened here", open.Span})
	end := left.Span().End
	if ok {
		end = closeTok.Span.End
	}
	return &Call{base{nodeCall, Span{left.Span().Start, end}}, left, args}, nil
}

func parseIndex(p *Parser, left Node) (Node, error) {
	open := p.advance() // '['
	idx, err := p.parsePrecedence(OP1)
	if err != nil {
		return nil, err
	}
	closeTok, ok := p.expect(RBRACKET, "expected ']' after index expression",
		DiagnosticInfo{"index opened here", open.Span})
	end := idx.Span().End
	if ok {
		end = closeTok.Span.End
	}
	return &Index{base{nodeIndex, Span{left.Span().Start, end}}, left, idx}, nil
}

func parseMember(p *Parser, left Node) (Node, error) {
	p.advance() // '.'
	nameTok, ok := p.expect(IDENTIFIER, "expected an identifier after '.'")
	name := ""
	end := left.Span().End
	if ok {
		name = nameTok.Lexeme
		end = nameTok.Span.End
	}
	return &Member{base{nodeMember, Span{left.Span().Start, end}}, left, name}, nil
}

func parseInstanceOf(p *Parser, left Node) (Node, error) {
	p.advance() // 'instanceof'
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &InstanceOf{base{nodeInstanceOf, Span{left.Span().Start, typ.SpanVal.End}}, left, *typ}, nil
}

// parseNewObject parses the OP11-precedence object expression `new`
// requires: an Identifier or a chain of Member expressions with
// Identifier leaves, per spec.md §3.3's invariant on New.Object.
func (p *Parser) parseNewObject() (Node, error) {
	if !p.check(IDENTIFIER) {
		p.sink.report(ERROR, "expected an identifier after 'new'", p.current().Span)
		return nil, errAt(p.current().Span, "expected identifier after new")
	}
	t := p.advance()
	var node Node = &Identifier{base{nodeIdentifier, t.Span}, t.Lexeme}
	for p.check(DOT) {
		p.advance()
		nameTok, ok := p.expect(IDENTIFIER, "expected an identifier after '.' in new expression")
		if !ok {
			return nil, errAt(p.current().Span, "malformed member chain")
		}
		node = &Member{base{nodeMember, Span{node.Span().Start, nameTok.Span.End}}, node, nameTok.Lexeme}
	}
	return node, nil
}

func parseNew(p *Parser) (Node, error) {
	startTok := p.advance() // 'new'
	obj, err := p.parseNewObject()
	if err != nil {
		return nil, err
	}

	var typeArgs []TypeExpr
	if _, ok := p.match(LESS); ok {
		for {
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			typeArgs = append(typeArgs, *t)
			if _, ok := p.match(COMMA); !ok {
				break
			}
		}
		if _, ok := p.expect(GREATER, "expected '>' to close generic argument list"); !ok {
			return nil, errAt(p.current().Span, "malformed generic argument list")
		}
	}

	open, ok := p.expect(LPAREN, "expected '(' after 'new' expression",
		DiagnosticInfo{"new expression started here", startTok.Span})
	if !ok {
		return nil, errAt(p.current().Span, "missing '(' after new expression")
	}

	var args []Node
	p.ignoreNewline()
	if !p.check(RPAREN) {
		for {
			p.ignoreNewline()
			a, err := p.parsePrecedence(OP1)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			p.ignoreNewline()
			if _, ok := p.match(COMMA); !ok {
				break
			}
		}
	}
	p.ignoreNewline()
	closeTok, ok := p.expect(RPAREN, "expected ')' after 'new' arguments",
		DiagnosticInfo{"call opened here", open.Span})
	end := open.Span.End
	if ok {
		end = closeTok.Span.End
	}

	return &New{base{nodeNew, Span{startTok.Span.Start, end}}, obj, typeArgs, args}, nil
}

func parseAsync(p *Parser) (Node, error) {
	startTok := p.advance() // 'async'
	operand, err := p.parsePrecedence(OP11)
	if err != nil {
		return nil, err
	}
	return &Async{base{nodeAsync, Span{startTok.Span.Start, operand.Span().End}}, operand}, nil
}
