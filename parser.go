package meow

// Parser consumes the lexer's token sequence by recursive descent and
// produces the Program node. It halts on the first failure; there is no
// error recovery.
type Parser struct {
	name   string
	idx    int
	tokens []*Token
	lines  []string
}

// newParser creates a parser over the given tokens. The source lines are
// kept for diagnostic context windows.
func newParser(name string, tokens []*Token, lines []string) *Parser {
	return &Parser{
		name:   name,
		tokens: tokens,
		lines:  lines,
	}
}

// Current returns the token at the cursor. Past the end it keeps
// returning the final EOF token.
func (p *Parser) Current() *Token {
	return p.Get(p.idx)
}

// Get returns the i-th token, clamped to the last one (always EOF in a
// well-formed stream).
func (p *Parser) Get(i int) *Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

// PeekN returns the token shift positions ahead of the cursor.
func (p *Parser) PeekN(shift int) *Token {
	return p.Get(p.idx + shift)
}

func (p *Parser) Consume() {
	p.idx++
}

// PeekType reports whether the current token has the given type.
func (p *Parser) PeekType(typ TokenType) bool {
	return p.Current().Typ == typ
}

// MatchType consumes and returns the current token if it has the given
// type, nil otherwise.
func (p *Parser) MatchType(typ TokenType) *Token {
	if p.Current().Typ == typ {
		t := p.Current()
		p.Consume()
		return t
	}
	return nil
}

// Expect consumes the current token if it has the given type; otherwise
// it fails with E104 at the current position.
func (p *Parser) Expect(typ TokenType) (*Token, error) {
	if t := p.MatchType(typ); t != nil {
		return t, nil
	}
	return nil, p.errorAt("E104", p.Current())
}

func (p *Parser) skipNewlines() {
	for p.Current().Typ == TokenNewline {
		p.Consume()
	}
}

// errorAt builds a diagnostic for the given code at the given token,
// with the source-context window attached.
func (p *Parser) errorAt(code string, t *Token) *Error {
	return NewError(code, p.name, t.Line, t.Col).WithContext(p.lines)
}

// Parse validates the miaou ... meow framing and parses the top-level
// statements. A missing 'miaou' fails with E000 at 1:1; reaching EOF
// before 'meow' fails with E001.
func (p *Parser) Parse() (*Program, error) {
	p.skipNewlines()

	if !p.PeekType(TokenMiaou) {
		return nil, NewError("E000", p.name, 1, 1).WithContext(p.lines)
	}
	start := positionOf(p.Current())
	p.Consume()
	p.skipNewlines()

	var statements []Node
	for !p.PeekType(TokenMeow) && !p.PeekType(TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		p.skipNewlines()
	}

	if !p.PeekType(TokenMeow) {
		return nil, p.errorAt("E001", p.Current())
	}

	return &Program{Statements: statements, Pos: start}, nil
}

// parseStatement dispatches on the leading token. An identifier followed
// by '=' is an assignment; everything without a dedicated statement form
// falls through to an expression statement.
func (p *Parser) parseStatement() (Node, error) {
	p.skipNewlines()

	switch p.Current().Typ {
	case TokenEcrire:
		return p.parseEcrire()
	case TokenSi:
		return p.parseIf()
	case TokenRepeter:
		return p.parseRepeat()
	case TokenTantQue:
		return p.parseWhile()
	case TokenPourChaque:
		return p.parseForEach()
	case TokenFonction:
		return p.parseFunctionDef()
	case TokenRetour:
		return p.parseReturn()
	case TokenEssayer:
		return p.parseTryExcept()
	case TokenIdentifier:
		if p.PeekN(1).Typ == TokenAssign {
			return p.parseAssignment()
		}
	}

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ExpressionStatement{Expression: expr, Pos: expr.Position()}, nil
}

// parseEcrire desugars 'ecrire a, b, ...' into a call to the built-in
// 'ecrire'. Arguments run until the end of the logical line.
func (p *Parser) parseEcrire() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	var args []Node
	for !p.PeekType(TokenNewline) && !p.PeekType(TokenEOF) {
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.PeekType(TokenComma) {
			p.Consume()
			continue
		}
		break
	}

	return &FunctionCall{Name: "ecrire", Arguments: args, Pos: pos}, nil
}

func (p *Parser) parseAssignment() (Node, error) {
	nameToken := p.Current()
	pos := positionOf(nameToken)
	p.Consume()

	if _, err := p.Expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &Assignment{Name: nameToken.Str, Value: value, Pos: pos}, nil
}

// parseBlockIntro consumes the ': NEWLINE+ INDENT' sequence every block
// introducer ends with.
func (p *Parser) parseBlockIntro() error {
	if _, err := p.Expect(TokenColon); err != nil {
		return err
	}
	p.skipNewlines()
	if _, err := p.Expect(TokenIndent); err != nil {
		return err
	}
	return nil
}

// parseBlock parses statements until the matching Dedent, which is
// consumed.
func (p *Parser) parseBlock() ([]Node, error) {
	var statements []Node

	p.skipNewlines()
	for !p.PeekType(TokenDedent) && !p.PeekType(TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		p.skipNewlines()
	}

	p.MatchType(TokenDedent)
	return statements, nil
}

func (p *Parser) parseIf() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	condition, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenAlors); err != nil {
		return nil, err
	}
	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &IfStatement{Condition: condition, ThenBlock: thenBlock, Pos: pos}

	p.skipNewlines()
	for p.PeekType(TokenSinonSi) {
		p.Consume()
		elifCondition, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(TokenAlors); err != nil {
			return nil, err
		}
		if err := p.parseBlockIntro(); err != nil {
			return nil, err
		}
		elifBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.ElifArms = append(node.ElifArms, ElifBranch{Condition: elifCondition, Body: elifBody})
		p.skipNewlines()
	}

	if p.PeekType(TokenSinon) {
		p.Consume()
		if err := p.parseBlockIntro(); err != nil {
			return nil, err
		}
		node.ElseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

func (p *Parser) parseWhile() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	condition, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &WhileLoop{Condition: condition, Body: body, Pos: pos}, nil
}

func (p *Parser) parseRepeat() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	count, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenFois); err != nil {
		return nil, err
	}
	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &RepeatLoop{Count: count, Body: body, Pos: pos}, nil
}

func (p *Parser) parseForEach() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	iterToken, err := p.Expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenDans); err != nil {
		return nil, err
	}
	iterable, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ForEachLoop{Iterator: iterToken.Str, Iterable: iterable, Body: body, Pos: pos}, nil
}

func (p *Parser) parseFunctionDef() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	nameToken, err := p.Expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenLParen); err != nil {
		return nil, err
	}

	var parameters []string
	for !p.PeekType(TokenRParen) {
		paramToken, err := p.Expect(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, paramToken.Str)

		if p.PeekType(TokenComma) {
			p.Consume()
		}
	}

	if _, err := p.Expect(TokenRParen); err != nil {
		return nil, err
	}
	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionDef{Name: nameToken.Str, Parameters: parameters, Body: body, Pos: pos}, nil
}

func (p *Parser) parseReturn() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	if p.PeekType(TokenNewline) || p.PeekType(TokenEOF) {
		return &ReturnStatement{Pos: pos}, nil
	}

	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ReturnStatement{Value: value, Pos: pos}, nil
}

func (p *Parser) parseTryExcept() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if _, err := p.Expect(TokenSauf); err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenErreur); err != nil {
		return nil, err
	}
	if err := p.parseBlockIntro(); err != nil {
		return nil, err
	}
	exceptBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &TryExcept{TryBlock: tryBlock, ExceptBlock: exceptBlock, Pos: pos}, nil
}
