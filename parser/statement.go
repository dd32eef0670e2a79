package parser

import (
	"github.com/t14raptor/go-es1/ast"
	"github.com/t14raptor/go-es1/token"
)

func (p *parser) parseStatement() (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.current().Kind {
	case token.Function:
		// `function` with no name at statement position is a function
		// expression, not a declaration.
		if p.peek(1).Kind != token.Identifier {
			return p.parseExpressionStatement()
		}
		return p.parseFunctionDeclaration()
	case token.LeftBrace:
		if p.isObjectLiteralAhead() {
			return p.parseExpressionStatement()
		}
		return p.parseBlockStatement()
	case token.Semicolon:
		p.next()
		return &ast.EmptyStatement{}, nil
	case token.Var:
		return p.parseVariableStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForOrForInStatement()
	case token.Continue:
		p.next()
		if err := p.semicolon(); err != nil {
			return nil, err
		}
		return &ast.ContinueStatement{}, nil
	case token.Break:
		p.next()
		if err := p.semicolon(); err != nil {
			return nil, err
		}
		return &ast.BreakStatement{}, nil
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	}
	return p.parseExpressionStatement()
}

// isObjectLiteralAhead distinguishes an object literal expression statement
// from a block at statement position: `{` followed by a property key and a
// `:` starts an object literal.
func (p *parser) isObjectLiteralAhead() bool {
	switch p.peek(1).Kind {
	case token.Identifier, token.String, token.Number:
		return p.peek(2).Kind == token.Colon
	}
	return false
}

func (p *parser) parseExpressionStatement() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

func (p *parser) parseBlockStatement() (*ast.BlockStatement, error) {
	p.next()

	block := &ast.BlockStatement{}
	for !p.at(token.RightBrace) && !p.at(token.Eof) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.List = append(block.List, stmt)
	}
	if !p.eat(token.RightBrace) {
		return nil, p.errorf("expected '}'")
	}
	return block, nil
}

func (p *parser) parseVariableStatement() (ast.Stmt, error) {
	p.next()

	list, err := p.parseVariableDeclarationList()
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{List: list}, nil
}

func (p *parser) parseVariableDeclarationList() ([]ast.VariableDeclarator, error) {
	var list []ast.VariableDeclarator
	for {
		if !p.at(token.Identifier) {
			return nil, p.errorf("expected an identifier in variable declaration but found '%s'", p.current().Content)
		}
		declarator := ast.VariableDeclarator{Name: p.next().Content}

		if p.eat(token.Assign) {
			initializer, err := p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
			declarator.Initializer = initializer
		}
		list = append(list, declarator)

		if !p.eat(token.Comma) {
			return list, nil
		}
	}
}

func (p *parser) parseIfStatement() (ast.Stmt, error) {
	p.next()

	if err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}

	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Test: test, Consequent: consequent}
	if p.eat(token.Else) {
		stmt.Alternate, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) parseWhileStatement() (ast.Stmt, error) {
	p.next()

	if err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Test: test, Body: body}, nil
}

// parseForOrForInStatement disambiguates the three exclusive for-loop forms
// after the opening parenthesis. The `in` operator is suppressed while the
// head is scanned so that a trailing `in` can only mean for-in syntax.
func (p *parser) parseForOrForInStatement() (ast.Stmt, error) {
	p.next()

	if err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}

	var initializer ast.Node
	switch {
	case p.at(token.Semicolon):
		// empty init clause
	case p.at(token.Var):
		p.next()
		allowIn := p.allowIn
		p.allowIn = false
		list, err := p.parseVariableDeclarationList()
		p.allowIn = allowIn
		if err != nil {
			return nil, err
		}
		if p.at(token.In) {
			if len(list) != 1 {
				return nil, p.errorf("expected a single variable name before 'in' in a for loop")
			}
			// `for (var x = init in obj)` parses; the initializer is
			// discarded.
			p.next()
			return p.parseForInTail(list[0].Name)
		}
		initializer = &ast.VariableDeclaration{List: list}
	default:
		allowIn := p.allowIn
		p.allowIn = false
		expr, err := p.parseExpression()
		p.allowIn = allowIn
		if err != nil {
			return nil, err
		}
		if p.at(token.In) {
			id, ok := expr.(*ast.Identifier)
			if !ok {
				return nil, p.errorf("expected an identifier before 'in' in a for loop")
			}
			p.next()
			return p.parseForInTail(id.Name)
		}
		initializer = expr
	}

	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	var test, update ast.Expr
	var err error
	if !p.at(token.Semicolon) {
		test, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	if !p.at(token.RightParenthesis) {
		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Initializer: initializer, Test: test, Update: update, Body: body}, nil
}

func (p *parser) parseForInTail(name string) (ast.Stmt, error) {
	source, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForInStatement{Name: name, Source: source, Body: body}, nil
}

// parseReturnStatement treats a line terminator right after `return` as a
// bare return; the would-be argument then starts its own statement.
func (p *parser) parseReturnStatement() (ast.Stmt, error) {
	p.next()

	stmt := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		argument, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Argument = argument
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseWithStatement() (ast.Stmt, error) {
	p.next()

	if err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}
	object, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WithStatement{Object: object, Body: body}, nil
}

func (p *parser) parseFunctionDeclaration() (ast.Stmt, error) {
	fn, err := p.parseFunctionLiteral(true)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Function: fn}, nil
}

// parseFunctionLiteral parses `function name(params) { body }`. The name is
// mandatory in declaration position, optional in expression position.
func (p *parser) parseFunctionLiteral(declaration bool) (*ast.FunctionLiteral, error) {
	p.next()

	fn := &ast.FunctionLiteral{}
	if p.at(token.Identifier) {
		fn.Name = p.next().Content
	} else if declaration {
		return nil, p.errorf("expected a function name but found '%s'", p.current().Content)
	}

	if !p.eat(token.LeftParenthesis) {
		return nil, p.errorf("expected '(' after function name")
	}
	if !p.at(token.RightParenthesis) {
		for {
			if !p.at(token.Identifier) {
				return nil, p.errorf("expected identifier in parameter list, found '%s'", p.current().Content)
			}
			fn.ParameterList = append(fn.ParameterList, p.next().Content)

			if p.eat(token.Comma) {
				continue
			}
			if p.at(token.RightParenthesis) {
				break
			}
			return nil, p.errorf("expected ',' or ')' in parameter list")
		}
	}
	p.next()

	if !p.eat(token.LeftBrace) {
		return nil, p.errorf("expected '{' after ')'")
	}
	// The body is a fresh statement context even inside a for-loop head, so
	// `in` suppression does not leak into it.
	allowIn := p.allowIn
	p.allowIn = true
	for !p.at(token.RightBrace) && !p.at(token.Eof) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		fn.Body = append(fn.Body, stmt)
	}
	p.allowIn = allowIn
	if !p.eat(token.RightBrace) {
		return nil, p.errorf("expected '}' in function body")
	}
	return fn, nil
}
