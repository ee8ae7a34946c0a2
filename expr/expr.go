// Package expr holds named lambda expressions and converts them to and from
// de Bruijn terms.
package expr

// Expr is a lambda expression with named variables. It is one of Variable,
// Invocation or Function.
type Expr interface {
	isExpr()
	String() string
}

type Variable struct {
	Name string
}

func (Variable) isExpr() {}

func (v Variable) String() string {
	return v.Name
}

type Invocation struct {
	Left  Expr
	Right Expr
}

func (Invocation) isExpr() {}

func (i Invocation) String() string {
	return "(" + i.Left.String() + " " + i.Right.String() + ")"
}

// Function is a single-parameter abstraction. It always prints as
// (\param.body); parameter lists accepted by the parser are not re-sugared.
type Function struct {
	Param string
	Body  Expr
}

func (Function) isExpr() {}

func (f Function) String() string {
	return "(\\" + f.Param + "." + f.Body.String() + ")"
}

func Var(name string) Expr { return Variable{name} }

func Inv(left, right Expr) Expr { return Invocation{left, right} }

func Fun(param string, body Expr) Expr { return Function{param, body} }
