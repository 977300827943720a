package ast

import (
	"bytes"

	"github.com/deepnoodle-ai/calc/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "5 - 1". Infix nodes always hold exactly two
// operands, in left-then-right source order.
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "|", "^", "&", "==", "!=", "<", "<=", ">", ">=", "+", "-", "*", "/", "%"
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Assign is an expression node that binds a value to a variable name.
// The target is an *Ident by construction: the grammar only permits a single
// name on the left side of "=".
type Assign struct {
	Name      *Ident         // assignment target
	AssignPos token.Position // position of "="
	Value     Expr           // assigned value
}

func (x *Assign) exprNode() {}

func (x *Assign) Pos() token.Position { return x.Name.Pos() }
func (x *Assign) End() token.Position { return x.Value.End() }

func (x *Assign) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Name.String())
	out.WriteString(" = ")
	out.WriteString(x.Value.String())
	out.WriteString(")")
	return out.String()
}
