package parser

import (
	"strconv"

	"github.com/t14raptor/go-es1/ast"
	"github.com/t14raptor/go-es1/token"
)

// parseExpression parses the comma tier. A single element comes back as
// itself, two or more fold into a SequenceExpression.
func (p *parser) parseExpression() (ast.Expr, error) {
	first, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Comma) {
		return first, nil
	}

	sequence := []ast.Expr{first}
	for p.eat(token.Comma) {
		expr, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, expr)
	}
	return &ast.SequenceExpression{Sequence: sequence}, nil
}

// parseAssignmentExpression parses the right-associative assignment tier:
// the value side of `target op= value` is itself a full assignment
// expression.
func (p *parser) parseAssignmentExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}

	operator := p.current().Kind
	if !token.IsAssignOperator(operator) {
		return left, nil
	}
	if !isAssignmentTarget(left) {
		return nil, p.errorf("illegal assignment operator '%s' after a non-assignable expression", p.current().Content)
	}
	p.next()

	right, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpression{Operator: operator, Left: left, Right: right}, nil
}

func isAssignmentTarget(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.IndexExpression:
		return true
	}
	return false
}

func (p *parser) parseConditionalExpression() (ast.Expr, error) {
	test, err := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if !p.eat(token.QuestionMark) {
		return test, nil
	}

	consequent, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if !p.eat(token.Colon) {
		return nil, p.errorf("expected ':' in conditional expression but found '%s'", p.current().Content)
	}
	alternate, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

// parseBinaryExpressionOrHigher runs the Pratt loop over every binary tier
// from logical-or down to multiplicative. The `in` operator is skipped while
// a for-loop head is being scanned.
func (p *parser) parseBinaryExpressionOrHigher(minBP Precedence) (ast.Expr, error) {
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		operator := p.current().Kind
		lbp := kindToPrecedence(operator)
		if lbp <= minBP {
			break
		}
		if operator == token.In && !p.allowIn {
			break
		}
		p.next()

		right, err := p.parseBinaryExpressionOrHigher(lbp ^ 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: operator, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnaryExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	operator := p.current().Kind
	if !token.IsUnaryOperator(operator) {
		return p.parsePostfixExpression()
	}
	p.next()

	operand, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	if operator == token.Increment || operator == token.Decrement {
		return &ast.UpdateExpression{Operator: operator, Operand: operand}, nil
	}
	return &ast.UnaryExpression{Operator: operator, Operand: operand}, nil
}

// parsePostfixExpression handles the trailing ++/--. A line terminator
// before the operator suppresses it so it can start the next statement
// instead.
func (p *parser) parsePostfixExpression() (ast.Expr, error) {
	operand, err := p.parseLeftHandSideExpression()
	if err != nil {
		return nil, err
	}

	operator := p.current().Kind
	if (operator == token.Increment || operator == token.Decrement) && !p.current().LineTerminatorBefore {
		p.next()
		return &ast.UpdateExpression{Operator: operator, Operand: operand, Postfix: true}, nil
	}
	return operand, nil
}

// parseLeftHandSideExpression parses a member expression and then chains
// arbitrary combinations of call arguments, dotted members and computed
// indexes onto it, left to right.
func (p *parser) parseLeftHandSideExpression() (ast.Expr, error) {
	left, err := p.parseMemberExpression()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Kind {
		case token.LeftParenthesis:
			arguments, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			left = &ast.CallExpression{Callee: left, Arguments: arguments}
		case token.Period:
			property, err := p.parseDotMember()
			if err != nil {
				return nil, err
			}
			left = &ast.MemberExpression{Object: left, Property: property}
		case token.LeftBracket:
			index, err := p.parseBracketMember()
			if err != nil {
				return nil, err
			}
			left = &ast.IndexExpression{Object: left, Index: index}
		default:
			return left, nil
		}
	}
}

// parseMemberExpression parses a primary, function or new expression and its
// `.prop` / `[expr]` chain, without consuming call arguments. `new` binds to
// the nearest member expression, so `new a.b(c)` calls a.b as constructor.
func (p *parser) parseMemberExpression() (ast.Expr, error) {
	var left ast.Expr
	var err error

	switch p.current().Kind {
	case token.New:
		left, err = p.parseNewExpression()
	case token.Function:
		left, err = p.parseFunctionLiteral(false)
	default:
		left, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Kind {
		case token.Period:
			property, err := p.parseDotMember()
			if err != nil {
				return nil, err
			}
			left = &ast.MemberExpression{Object: left, Property: property}
		case token.LeftBracket:
			index, err := p.parseBracketMember()
			if err != nil {
				return nil, err
			}
			left = &ast.IndexExpression{Object: left, Index: index}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseNewExpression() (ast.Expr, error) {
	p.next()

	callee, err := p.parseMemberExpression()
	if err != nil {
		return nil, err
	}

	arguments := &ast.SequenceExpression{}
	if p.at(token.LeftParenthesis) {
		arguments, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return &ast.NewExpression{Callee: callee, Arguments: arguments}, nil
}

// parseDotMember consumes `.name`. Keywords are admitted as property names.
func (p *parser) parseDotMember() (string, error) {
	p.next()
	if !token.ID(p.current().Kind) {
		return "", p.errorf("expected a property name after '.' but found '%s'", p.current().Content)
	}
	return p.next().Content, nil
}

func (p *parser) parseBracketMember() (ast.Expr, error) {
	p.next()
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.eat(token.RightBracket) {
		return nil, p.errorf("expected ']'")
	}
	return index, nil
}

// parseArguments consumes a parenthesised argument list. Argument lists
// reuse the sequence node, so an empty list is an empty sequence.
func (p *parser) parseArguments() (*ast.SequenceExpression, error) {
	p.next()

	arguments := &ast.SequenceExpression{}
	if p.eat(token.RightParenthesis) {
		return arguments, nil
	}

	for {
		expr, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		arguments.Sequence = append(arguments.Sequence, expr)

		if p.eat(token.Comma) {
			continue
		}
		if p.eat(token.RightParenthesis) {
			return arguments, nil
		}
		return nil, p.errorf("expected ',' or ')' in arguments")
	}
}

func (p *parser) parsePrimaryExpression() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case token.This:
		p.next()
		return &ast.ThisExpression{}, nil
	case token.Identifier:
		p.next()
		return &ast.Identifier{Name: tok.Content}, nil
	case token.Number:
		return p.parseNumberLiteral()
	case token.String:
		p.next()
		return &ast.StringLiteral{Value: stripDelimiters(tok.Content)}, nil
	case token.Boolean:
		p.next()
		return &ast.BooleanLiteral{Value: tok.Content == "true"}, nil
	case token.Null:
		p.next()
		return &ast.NullLiteral{}, nil
	case token.Undefined:
		p.next()
		return &ast.UndefinedLiteral{}, nil
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftParenthesis:
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.at(token.RightParenthesis) {
			return nil, p.errorf("unexpected token '%s', expected ')'", p.current().Content)
		}
		p.next()
		return expr, nil
	}
	return nil, p.errorUnexpectedToken()
}

// parseNumberLiteral converts the loosely scanned literal to a 64-bit float.
// Literals the scan let through but the conversion rejects fail here.
func (p *parser) parseNumberLiteral() (ast.Expr, error) {
	tok := p.current()
	value, err := strconv.ParseFloat(tok.Content, 64)
	if err != nil {
		return nil, p.errorf("invalid number literal '%s'", tok.Content)
	}
	p.next()
	return &ast.NumberLiteral{Value: value}, nil
}

// stripDelimiters drops the quotes off a string token. Escape pairs inside
// stay verbatim.
func stripDelimiters(content string) string {
	return content[1 : len(content)-1]
}

// parseArrayLiteral consumes `[...]` with elision semantics: a comma with no
// element before it, and a trailing comma before `]`, each insert an
// explicit undefined element.
func (p *parser) parseArrayLiteral() (ast.Expr, error) {
	p.next()

	literal := &ast.ArrayLiteral{}
	for !p.at(token.RightBracket) {
		if p.eat(token.Comma) {
			literal.Value = append(literal.Value, &ast.UndefinedLiteral{})
			continue
		}

		element, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		literal.Value = append(literal.Value, element)

		if p.eat(token.Comma) {
			if p.at(token.RightBracket) {
				literal.Value = append(literal.Value, &ast.UndefinedLiteral{})
			}
		} else if !p.at(token.RightBracket) {
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
	p.next()
	return literal, nil
}

// parseObjectLiteral consumes `{ key: value, ... }`. Keys are identifiers,
// strings or numbers; a trailing comma is tolerated.
func (p *parser) parseObjectLiteral() (ast.Expr, error) {
	p.next()

	literal := &ast.ObjectLiteral{}
	for !p.at(token.RightBrace) {
		key, err := p.parseObjectPropertyKey()
		if err != nil {
			return nil, err
		}
		if !p.eat(token.Colon) {
			return nil, p.errorf("expected ':' after object property key but found '%s'", p.current().Content)
		}
		value, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		literal.Value = append(literal.Value, ast.Property{Key: key, Value: value})

		if p.eat(token.Comma) {
			continue
		}
		if !p.at(token.RightBrace) {
			return nil, p.errorf("expected ',' or '}' in object literal")
		}
	}
	p.next()
	return literal, nil
}

func (p *parser) parseObjectPropertyKey() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case token.Identifier:
		p.next()
		return &ast.Identifier{Name: tok.Content}, nil
	case token.String:
		p.next()
		return &ast.StringLiteral{Value: stripDelimiters(tok.Content)}, nil
	case token.Number:
		return p.parseNumberLiteral()
	}
	return nil, p.errorf("expected a property key in object literal but found '%s'", tok.Content)
}
