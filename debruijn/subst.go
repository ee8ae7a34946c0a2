package debruijn

// Shift adds amount to every index in t that is at least depth, counting
// depth up by one under each abstraction.
func Shift(amount, depth int, t Term) Term {
	switch t := t.(type) {
	case Index:
		if int(t) < depth {
			return t
		}
		return t + Index(amount)
	case Apply:
		return Apply{Shift(amount, depth, t.Left), Shift(amount, depth, t.Right)}
	case Abstraction:
		return Abstraction{t.Label, Shift(amount, depth+1, t.Body)}
	}
	panic("unreachable")
}

// Subst replaces every reference to slot in t with replacement, shifting the
// replacement's free indices by the number of binders crossed.
func Subst(slot int, t, replacement Term) Term {
	return subst(slot, 0, t, replacement)
}

func subst(slot, depth int, t, s Term) Term {
	switch t := t.(type) {
	case Index:
		if int(t)-depth == slot {
			return Shift(depth, 0, s)
		}
		return t
	case Apply:
		return Apply{subst(slot, depth, t.Left, s), subst(slot, depth, t.Right, s)}
	case Abstraction:
		return Abstraction{t.Label, subst(slot, depth+1, t.Body, s)}
	}
	panic("unreachable")
}

// Beta contracts t if it is an abstraction applied to an argument and
// returns t unchanged otherwise.
func Beta(t Term) Term {
	t, _ = contract(t)
	return t
}

func contract(t Term) (Term, bool) {
	app, ok := t.(Apply)
	if !ok {
		return t, false
	}
	abs, ok := app.Left.(Abstraction)
	if !ok {
		return t, false
	}
	return Shift(-1, 0, Subst(0, abs.Body, Shift(1, 0, app.Right))), true
}

// IsRedex reports whether t is an abstraction applied to an argument.
func IsRedex(t Term) bool {
	if app, ok := t.(Apply); ok {
		_, ok = app.Left.(Abstraction)
		return ok
	}
	return false
}
