// Package format renders Calc syntax trees as canonical source text.
// It contains no parsing logic; rendering is a pure function of the tree.
package format

import (
	"bytes"
	"strconv"

	"github.com/deepnoodle-ai/calc/ast"
)

// Format renders a node in canonical form. Infix and assignment expressions
// are fully parenthesized, numbers use the shortest representation that
// round-trips, and a Program renders one statement per line. A nil node
// renders as the empty string.
func Format(node ast.Node) string {
	f := &formatter{}
	f.formatNode(node)
	return f.buf.String()
}

// formatter holds state for rendering a syntax tree as source text.
type formatter struct {
	buf bytes.Buffer
}

func (f *formatter) formatNode(node ast.Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *ast.Program:
		for i, stmt := range n.Stmts {
			if i > 0 {
				f.buf.WriteString("\n")
			}
			f.formatNode(stmt)
		}

	case *ast.Assign:
		f.buf.WriteString("(")
		if n.Name != nil {
			f.buf.WriteString(n.Name.Name)
		}
		f.buf.WriteString(" = ")
		f.formatNode(n.Value)
		f.buf.WriteString(")")

	case *ast.Infix:
		f.buf.WriteString("(")
		f.formatNode(n.X)
		f.buf.WriteString(" ")
		f.buf.WriteString(n.Op)
		f.buf.WriteString(" ")
		f.formatNode(n.Y)
		f.buf.WriteString(")")

	case *ast.Ident:
		f.buf.WriteString(n.Name)

	case *ast.Number:
		f.buf.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case *ast.Bool:
		if n.Value {
			f.buf.WriteString("true")
		} else {
			f.buf.WriteString("false")
		}
	}
}
