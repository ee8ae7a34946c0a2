// Package debruijn implements untyped lambda terms in de Bruijn index form
// together with shifting, substitution, beta reduction and the reduction
// strategies that drive a term to normal form.
package debruijn

import "strconv"

// Term is a lambda term in de Bruijn form. It is one of Index, Apply or
// Abstraction.
type Term interface {
	isTerm()
	String() string
}

// Index refers to the binder Index levels out, or past all enclosing binders
// to a free slot.
type Index int

func (Index) isTerm() {}

func (i Index) String() string {
	return strconv.Itoa(int(i))
}

type Apply struct {
	Left  Term
	Right Term
}

func (Apply) isTerm() {}

func (a Apply) String() string {
	return "(" + a.Left.String() + " " + a.Right.String() + ")"
}

// Abstraction binds a single parameter. Label is the parameter's original
// name and is only used to recover names; it never affects reduction or
// equality.
type Abstraction struct {
	Label string
	Body  Term
}

func (Abstraction) isTerm() {}

func (a Abstraction) String() string {
	return "(λ." + a.Body.String() + ")"
}

func Idx(n int) Term { return Index(n) }

func App(left, right Term) Term { return Apply{left, right} }

func Lam(label string, body Term) Term { return Abstraction{label, body} }

// Equal reports whether a and b have the same shape and indices. Labels are
// ignored.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Index:
		b, ok := b.(Index)
		return ok && a == b
	case Apply:
		b, ok := b.(Apply)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Abstraction:
		b, ok := b.(Abstraction)
		return ok && Equal(a.Body, b.Body)
	}
	return false
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch t := t.(type) {
	case Apply:
		return 1 + Size(t.Left) + Size(t.Right)
	case Abstraction:
		return 1 + Size(t.Body)
	}
	return 1
}
