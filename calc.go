// Package calc parses the Calc expression language and renders syntax
// trees back as canonical source text.
package calc

import (
	"context"

	"github.com/deepnoodle-ai/calc/ast"
	"github.com/deepnoodle-ai/calc/format"
	"github.com/deepnoodle-ai/calc/parser"
)

// Option configures a Calc parse.
type Option func(*options)

type options struct {
	filename string
	maxDepth int
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

// WithFilename sets the filename for the source code being parsed.
// This is used in error messages and locations.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithMaxDepth caps the expression nesting depth the parser will accept.
// Inputs nested more deeply fail with a syntax error rather than
// exhausting the stack. The default is parser.DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// Parse parses Calc source code into a syntax tree.
// The returned Program is immutable and safe for concurrent use.
// On any syntax error the Program is nil.
func Parse(ctx context.Context, source string, opts ...Option) (*ast.Program, error) {
	o := collectOptions(opts...)
	return parser.Parse(ctx, source, o.parserOpts()...)
}

// Render is a convenience function that parses source code and renders it
// in canonical form, one fully parenthesized statement per line. It is
// equivalent to Parse() followed by format.Format().
func Render(ctx context.Context, source string, opts ...Option) (string, error) {
	program, err := Parse(ctx, source, opts...)
	if err != nil {
		return "", err
	}
	return format.Format(program), nil
}
