package debruijn

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// A Strategy finds one redex in a term and contracts it. It reports false if
// the term has no redex it is willing to contract.
type Strategy func(Term) (Term, bool)

// NormalOrder contracts the leftmost-outermost redex, reducing under
// abstractions. Operands are not evaluated before they are substituted.
func NormalOrder(t Term) (Term, bool) {
	switch t := t.(type) {
	case Abstraction:
		body, ok := NormalOrder(t.Body)
		if !ok {
			return t, false
		}
		return Abstraction{t.Label, body}, true
	case Apply:
		if IsRedex(t) {
			return contract(t)
		}
		if left, ok := NormalOrder(t.Left); ok {
			return Apply{left, t.Right}, true
		}
		if right, ok := NormalOrder(t.Right); ok {
			return Apply{t.Left, right}, true
		}
	}
	return t, false
}

// ValueFirst reduces the operand of a redex until it has no redex left and
// only then contracts the redex itself. Elsewhere it searches like
// NormalOrder.
func ValueFirst(t Term) (Term, bool) {
	switch t := t.(type) {
	case Abstraction:
		body, ok := ValueFirst(t.Body)
		if !ok {
			return t, false
		}
		return Abstraction{t.Label, body}, true
	case Apply:
		if IsRedex(t) {
			if right, ok := ValueFirst(t.Right); ok {
				return Apply{t.Left, right}, true
			}
			return contract(t)
		}
		if left, ok := ValueFirst(t.Left); ok {
			return Apply{left, t.Right}, true
		}
		if right, ok := ValueFirst(t.Right); ok {
			return Apply{t.Left, right}, true
		}
	}
	return t, false
}

type namedStrategy struct {
	name string
	fn   Strategy
}

var strategies = []namedStrategy{
	{"normal", NormalOrder},
	{"value", ValueFirst},
}

// Strategies returns the names accepted by StrategyByName.
func Strategies() []string {
	return lo.Map(strategies, func(s namedStrategy, _ int) string { return s.name })
}

// StrategyByName returns the strategy registered under name.
func StrategyByName(name string) (Strategy, error) {
	for _, s := range strategies {
		if s.name == name {
			return s.fn, nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(Strategies(), ", "))
}
