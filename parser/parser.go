// Package parser is used to generate the abstract syntax tree (AST) for a program.
//
// A parser is created by calling New() with a lexer as input. The parser should
// then be used only once, by calling parser.Parse() to produce the AST.
package parser

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/calc/ast"
	"github.com/deepnoodle-ai/calc/errors"
	"github.com/deepnoodle-ai/calc/internal/lexer"
	"github.com/deepnoodle-ai/calc/token"
)

// Parse the provided input as Calc source code and return the AST. This is a
// shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	// Extract filename from options before creating the parser, so that lexer
	// errors in the first tokens have proper location context.
	var filename string
	for _, opt := range options {
		if opt == nil {
			continue
		}
		var probe Parser
		opt(&probe)
		if probe.filename != "" {
			filename = probe.filename
			break
		}
	}

	l := lexer.New(input)
	if filename != "" {
		l.SetFilename(filename)
	}

	p := New(l, options...)
	return p.Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in error locations.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object. The parser reads forward through the token stream exactly
// once: curToken is the only cursor and nothing ever rewinds it.
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// l is our lexer
	l *lexer.Lexer

	// curToken holds the current token from the lexer.
	curToken token.Token

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// nextToken advances the cursor to the next token from the lexer. A lexer
// failure is returned as a syntax error located at the offending lexeme,
// and parsing is then considered broken.
func (p *Parser) nextToken() error {
	tok, err := p.l.Next()
	p.curToken = tok
	if err == nil {
		return nil
	}
	return NewSyntaxError(ErrorOpts{
		Code:          errors.E1006,
		Cause:         err,
		File:          p.l.Filename(),
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    p.l.GetLineText(tok),
	})
}

// Parse the program that is provided via the lexer. Parsing is all or
// nothing: either every statement in the input is returned, or the first
// syntax error is returned with a nil program.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	// Prime the cursor with the first token.
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	var statements []ast.Node
	for !p.curTokenIs(token.EOF) {
		if err := p.checkContext(); err != nil {
			return nil, err
		}
		// statementLine is the line holding this statement's first token.
		// The statement is complete at the first token found on a later line.
		statementLine := p.curToken.StartPosition.Line
		stmt, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.curTokenIs(token.EOF) && p.curToken.StartPosition.Line <= statementLine {
			return nil, p.tokenErrorf(errors.E1002, p.curToken,
				"unexpected token %q following statement", p.curToken.Literal)
		}
		statements = append(statements, stmt)
	}
	return &ast.Program{Stmts: statements}, nil
}

// checkContext returns an error if the parsing context has been cancelled.
func (p *Parser) checkContext() error {
	if p.ctx == nil {
		return nil
	}
	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	default:
		return nil
	}
}

// tokenErrorf creates a syntax error located at the given token.
func (p *Parser) tokenErrorf(code errors.ErrorCode, t token.Token, msg string, args ...interface{}) *SyntaxError {
	return NewSyntaxError(ErrorOpts{
		Code:          code,
		Message:       fmt.Sprintf(msg, args...),
		File:          p.l.Filename(),
		StartPosition: t.StartPosition,
		EndPosition:   t.EndPosition,
		SourceCode:    p.l.GetLineText(t),
	})
}

// newIdent creates a new Ident node from a token.
func (p *Parser) newIdent(tok token.Token) *ast.Ident {
	return &ast.Ident{NamePos: tok.StartPosition, Name: tok.Literal}
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}
