package parser

import (
	"fmt"
	"strconv"

	"github.com/deepnoodle-ai/calc/ast"
	"github.com/deepnoodle-ai/calc/errors"
	"github.com/deepnoodle-ai/calc/token"
)

// Expression parsing methods for the Parser, one method per precedence tier.
// The tiers, from loosest to tightest binding:
//
//	assignment      =               (right-associative)
//	logical or      |
//	logical xor     ^
//	logical and     &
//	equality        == !=
//	relational      < <= > >=
//	additive        + -
//	multiplicative  * / %
//	factor          literals, identifiers, grouped expressions
//
// Each tier parses one operand at the next tighter tier and then folds
// same-tier operators from left to right. Assignment is the lone
// right-associative tier and factor is the terminal tier.

// parseExpression is the entry point for a single expression. It also
// enforces the maximum nesting depth to protect the call stack.
func (p *Parser) parseExpression() (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.tokenErrorf(errors.E1007, p.curToken, "maximum nesting depth exceeded")
	}
	return p.parseAssignment()
}

// parseAssignment handles the "=" tier. The left operand must turn out to be
// a single identifier, which is only known after parsing it.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.ASSIGN) {
		return left, nil
	}
	op := p.curToken
	name, ok := left.(*ast.Ident)
	if !ok {
		return nil, p.tokenErrorf(errors.E1005, op,
			"invalid assignment target (expected an identifier on the left side of %q)", op.Literal)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	// The right side binds everything up to the next assignment, so that
	// a = b = 3 groups as a = (b = 3).
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: name, AssignPos: op.StartPosition, Value: value}, nil
}

// parseLogicalOr handles the "|" tier.
func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	left, err := p.parseLogicalXor()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.OR) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalXor()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseLogicalXor handles the "^" tier.
func (p *Parser) parseLogicalXor() (ast.Expr, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.XOR) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseLogicalAnd handles the "&" tier.
func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.AND) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseEquality handles the "==" and "!=" tier.
func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.EQ) || p.curTokenIs(token.NOT_EQ) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseRelational handles the "<", "<=", ">", and ">=" tier.
func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.LT) || p.curTokenIs(token.LT_EQUALS) ||
		p.curTokenIs(token.GT) || p.curTokenIs(token.GT_EQUALS) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseAdditive handles the "+" and "-" tier.
func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.PLUS) || p.curTokenIs(token.MINUS) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseMultiplicative handles the "*", "/", and "%" tier.
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.ASTERISK) || p.curTokenIs(token.SLASH) || p.curTokenIs(token.MOD) {
		op := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, OpPos: op.StartPosition, Op: op.Literal, Y: right}
	}
	return left, nil
}

// parseFactor is the terminal tier: literals, identifiers, and parenthesized
// expressions.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curToken.Type {
	case token.NUMBER:
		return p.parseNumber()
	case token.IDENT:
		ident := p.newIdent(p.curToken)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return ident, nil
	case token.TRUE, token.FALSE:
		return p.parseBoolean()
	case token.LPAREN:
		return p.parseGroupedExpr()
	default:
		return nil, p.tokenErrorf(errors.E1001, p.curToken,
			"invalid syntax (unexpected %s)", tokenDescription(p.curToken))
	}
}

// parseNumber parses a numeric literal into a float64-backed Number node.
func (p *Parser) parseNumber() (ast.Expr, error) {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.tokenErrorf(errors.E1004, tok, "invalid number literal: %s", tok.Literal)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return &ast.Number{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: value}, nil
}

// parseBoolean parses a true or false literal.
func (p *Parser) parseBoolean() (ast.Expr, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return &ast.Bool{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: tok.Type == token.TRUE}, nil
}

// parseGroupedExpr parses "(" expression ")". Grouping only affects how the
// expression is parsed, so the inner expression is returned as is. A missing
// closing parenthesis is reported at the token found in its place, with a
// hint pointing back at the opener.
func (p *Parser) parseGroupedExpr() (ast.Expr, error) {
	openParen := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.RPAREN) {
		return nil, NewSyntaxError(ErrorOpts{
			Code: errors.E1003,
			Message: fmt.Sprintf("unexpected %s while parsing grouped expression (expected %s)",
				tokenDescription(p.curToken), tokenTypeDescription(token.RPAREN)),
			Hint: fmt.Sprintf("the opening parenthesis at line %d column %d was never closed",
				openParen.StartPosition.LineNumber(), openParen.StartPosition.ColumnNumber()),
			File:          p.l.Filename(),
			StartPosition: p.curToken.StartPosition,
			EndPosition:   p.curToken.EndPosition,
			SourceCode:    p.l.GetLineText(p.curToken),
		})
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return expr, nil
}
