package meow

import "strings"

// Expression precedence, lowest to highest:
//
//	ou
//	et
//	non (unary)
//	comparison  = == != < > <= >=
//	additive    + -
//	multiplicative  * / // %
//	power       ** (right-associative)
//	unary       -
//	postfix     call (...), index [...]
//	primary
//
// The '=' token means equality in expression position; the parser decides
// assignment vs. equality with one token of lookahead at statement entry,
// which keeps the lexer context-free.

// comparisonOperators maps comparison token types to the operator
// spelling carried on the BinaryOp node. Assign and Equal both map to '='.
var comparisonOperators = map[TokenType]string{
	TokenAssign:       "=",
	TokenEqual:        "=",
	TokenNotEqual:     "!=",
	TokenLessThan:     "<",
	TokenGreaterThan:  ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
}

var multiplicativeOperators = map[TokenType]string{
	TokenMultiply: "*",
	TokenDivide:   "/",
	TokenFloorDiv: "//",
	TokenModulo:   "%",
}

// builtinKeywordNames maps the keyword-introduced built-in call forms to
// the built-in name the call desugars to. 'aleatoire' is here too but its
// argument grammar (START a END) is special-cased in parseBuiltinKeywordCall.
var builtinKeywordNames = map[TokenType]string{
	TokenMinuscule: "minuscule",
	TokenMajuscule: "majuscule",
	TokenLongueur:  "longueur",
	TokenAleatoire: "aleatoire",
	TokenSqrt:      "sqrt",
	TokenAbs:       "abs",
	TokenRound:     "round",
	TokenFloor:     "floor",
	TokenCeil:      "ceil",
	TokenAttendre:  "attendre",
}

// ParseExpression parses one full expression at the lowest precedence
// level.
func (p *Parser) ParseExpression() (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.PeekType(TokenOu) {
		pos := positionOf(p.Current())
		p.Consume()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Operator: "ou", Right: right, Pos: pos}
	}

	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.PeekType(TokenEt) {
		pos := positionOf(p.Current())
		p.Consume()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Operator: "et", Right: right, Pos: pos}
	}

	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.PeekType(TokenNon) {
		pos := positionOf(p.Current())
		p.Consume()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: "non", Operand: operand, Pos: pos}, nil
	}

	return p.parseComparison()
}

// parseComparison is left-associative over the comparison operators even
// though chaining them rarely makes semantic sense: 'x < y < z' parses as
// '(x < y) < z'. The boolean left operand has no numeric reading, so a
// chained ordering comparison fails with E202; a chained '=' or '!='
// compares that boolean against z.
func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := comparisonOperators[p.Current().Typ]
		if !ok {
			return left, nil
		}
		pos := positionOf(p.Current())
		p.Consume()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Operator: op, Right: right, Pos: pos}
	}
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.PeekType(TokenPlus) || p.PeekType(TokenMinus) {
		pos := positionOf(p.Current())
		op := "+"
		if p.Current().Typ == TokenMinus {
			op = "-"
		}
		p.Consume()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Operator: op, Right: right, Pos: pos}
	}

	return left, nil
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := multiplicativeOperators[p.Current().Typ]
		if !ok {
			return left, nil
		}
		pos := positionOf(p.Current())
		p.Consume()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Operator: op, Right: right, Pos: pos}
	}
}

// parsePower is right-associative: 2 ** 3 ** 2 is 2 ** (3 ** 2).
func (p *Parser) parsePower() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.PeekType(TokenPower) {
		pos := positionOf(p.Current())
		p.Consume()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Left: left, Operator: "**", Right: right, Pos: pos}, nil
	}

	return left, nil
}

func (p *Parser) parseUnary() (Node, error) {
	if p.PeekType(TokenMinus) {
		pos := positionOf(p.Current())
		p.Consume()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: "-", Operand: operand, Pos: pos}, nil
	}

	return p.parsePostfix()
}

// parsePostfix chains call and index suffixes onto a primary. '(' only
// starts a call when the expression so far is a bare identifier; the
// language has no first-class function values to call.
func (p *Parser) parsePostfix() (Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.Current().Typ {
		case TokenLParen:
			ident, ok := expr.(*Identifier)
			if !ok {
				return expr, nil
			}
			pos := positionOf(p.Current())
			p.Consume()

			var arguments []Node
			for !p.PeekType(TokenRParen) {
				arg, err := p.ParseExpression()
				if err != nil {
					return nil, err
				}
				arguments = append(arguments, arg)

				if p.PeekType(TokenComma) {
					p.Consume()
				}
			}
			if _, err := p.Expect(TokenRParen); err != nil {
				return nil, err
			}

			expr = &FunctionCall{Name: ident.Name, Arguments: arguments, Pos: pos}

		case TokenLBracket:
			pos := positionOf(p.Current())
			p.Consume()
			index, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.Expect(TokenRBracket); err != nil {
				return nil, err
			}
			expr = &IndexAccess{Object: expr, Index: index, Pos: pos}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (Node, error) {
	token := p.Current()
	pos := positionOf(token)

	switch token.Typ {
	case TokenInt:
		p.Consume()
		return &Literal{Value: AsValue(token.Int), Pos: pos}, nil

	case TokenFloat:
		p.Consume()
		return &Literal{Value: AsValue(token.Float), Pos: pos}, nil

	case TokenString:
		p.Consume()
		return &Literal{Value: AsValue(token.Str), Pos: pos}, nil

	case TokenBool:
		p.Consume()
		return &Literal{Value: AsValue(token.Bool), Pos: pos}, nil

	case TokenIdentifier:
		p.Consume()
		return &Identifier{Name: token.Str, Pos: pos}, nil

	case TokenCompteur:
		p.Consume()
		return &Identifier{Name: "compteur", Pos: pos}, nil

	case TokenLParen:
		p.Consume()
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	case TokenListe:
		return p.parseListConstructor()

	case TokenDemander:
		return p.parseDemander()
	}

	if name, ok := builtinKeywordNames[token.Typ]; ok {
		return p.parseBuiltinKeywordCall(name, token.Typ, pos)
	}

	return nil, p.errorAt("E100", token)
}

// parseListConstructor parses 'liste(a, b, ...)'.
func (p *Parser) parseListConstructor() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	if _, err := p.Expect(TokenLParen); err != nil {
		return nil, err
	}

	var elements []Node
	for !p.PeekType(TokenRParen) {
		element, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)

		if p.PeekType(TokenComma) {
			p.Consume()
		}
	}

	if _, err := p.Expect(TokenRParen); err != nil {
		return nil, err
	}

	return &ListExpr{Elements: elements, Pos: pos}, nil
}

// parseDemander parses 'demander texte EXPR' / 'demander nombre EXPR' and
// desugars to a call of 'demander_texte' / 'demander_nombre' with the
// prompt expression. 'texte' and 'nombre' arrive as plain identifiers.
func (p *Parser) parseDemander() (Node, error) {
	pos := positionOf(p.Current())
	p.Consume()

	kindToken := p.Current()
	if kindToken.Typ != TokenIdentifier {
		return nil, p.errorAt("E104", kindToken)
	}
	kind := strings.ToLower(kindToken.Str)
	if kind != "texte" && kind != "nombre" {
		return nil, p.errorAt("E104", kindToken)
	}
	p.Consume()

	prompt, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &FunctionCall{
		Name:      "demander_" + kind,
		Arguments: []Node{prompt},
		Pos:       pos,
	}, nil
}

// parseBuiltinKeywordCall parses the keyword-introduced built-in call
// forms. 'aleatoire START a END' takes two expressions separated by the
// 'a' keyword; every other form takes a single expression argument with
// no parentheses required.
func (p *Parser) parseBuiltinKeywordCall(name string, typ TokenType, pos Position) (Node, error) {
	p.Consume()

	var arguments []Node
	if typ == TokenAleatoire {
		start, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.Expect(TokenA); err != nil {
			return nil, err
		}
		end, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, start, end)
	} else {
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	return &FunctionCall{Name: name, Arguments: arguments, Pos: pos}, nil
}
