package expr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/smasher164/untyped/debruijn"
)

// ToTerm converts e to de Bruijn form. Bound variables get the distance to
// their binder. Free variables are numbered in order of first occurrence
// and referenced past all enclosing binders, so the same free name gets a
// different index at a different depth but always the same slot. The
// returned list holds the free names in slot order.
func ToTerm(e Expr) (debruijn.Term, []string) {
	var c converter
	t := c.toTerm(nil, e)
	return t, c.free
}

type converter struct {
	free []string
}

// bound is innermost first.
func (c *converter) toTerm(bound []string, e Expr) debruijn.Term {
	switch e := e.(type) {
	case Variable:
		if i := slices.Index(bound, e.Name); i >= 0 {
			return debruijn.Index(i)
		}
		i := slices.Index(c.free, e.Name)
		if i < 0 {
			c.free = append(c.free, e.Name)
			i = len(c.free) - 1
		}
		return debruijn.Index(len(bound) + i)
	case Invocation:
		return debruijn.Apply{Left: c.toTerm(bound, e.Left), Right: c.toTerm(bound, e.Right)}
	case Function:
		return debruijn.Abstraction{Label: e.Param, Body: c.toTerm(prepend(e.Param, bound), e.Body)}
	}
	panic("unreachable")
}

// UnresolvedIndexError is returned by FromTerm when an index points past
// every binder and free name in scope.
type UnresolvedIndexError struct {
	Index   int
	Context []string // innermost first
}

func (e *UnresolvedIndexError) Error() string {
	return fmt.Sprintf("unresolvable index %d in context [%s]", e.Index, strings.Join(e.Context, " "))
}

// FromTerm converts t back to named form, resolving free slots against free.
// Binder labels that would shadow a name already in scope are renamed with
// FreshName.
func FromTerm(free []string, t debruijn.Term) (Expr, error) {
	return fromTerm(slices.Clone(free), t)
}

// ctx is innermost first; the free names sit below every binder.
func fromTerm(ctx []string, t debruijn.Term) (Expr, error) {
	switch t := t.(type) {
	case debruijn.Index:
		if int(t) < 0 || int(t) >= len(ctx) {
			return nil, &UnresolvedIndexError{Index: int(t), Context: ctx}
		}
		return Variable{ctx[t]}, nil
	case debruijn.Apply:
		left, err := fromTerm(ctx, t.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromTerm(ctx, t.Right)
		if err != nil {
			return nil, err
		}
		return Invocation{left, right}, nil
	case debruijn.Abstraction:
		name := FreshName(ctx, t.Label)
		body, err := fromTerm(prepend(name, ctx), t.Body)
		if err != nil {
			return nil, err
		}
		return Function{name, body}, nil
	}
	panic("unreachable")
}

// FreshName returns name, or the first of its numbered variants name_1,
// name_2, ... not in ctx. A name already ending in _N continues from N+1.
func FreshName(ctx []string, name string) string {
	for slices.Contains(ctx, name) {
		name = nextName(name)
	}
	return name
}

func nextName(name string) string {
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		suffix := name[i+1:]
		if suffix != "" && strings.Trim(suffix, "0123456789") == "" {
			if n, err := strconv.Atoi(suffix); err == nil {
				return name[:i+1] + strconv.Itoa(n+1)
			}
		}
	}
	return name + "_1"
}

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}
