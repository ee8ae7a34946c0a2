package debruijn

// Outcome tells how Normalize stopped.
type Outcome int

const (
	// Converged means no redex was left.
	Converged Outcome = iota
	// StepLimitReached means the step ceiling was hit while a redex remained.
	StepLimitReached
)

func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case StepLimitReached:
		return "step limit reached"
	}
	panic("unreachable")
}

// Result is the term Normalize stopped at, the number of contractions
// performed and why it stopped.
type Result struct {
	Term    Term
	Steps   int
	Outcome Outcome
}

// A Tracer observes intermediate terms. Step 0 is the input term; step i is
// the term after the i-th contraction.
type Tracer func(step int, t Term)

// Normalize applies step to t until it reports no progress or limit
// contractions have been performed. trace may be nil.
func Normalize(t Term, step Strategy, limit int, trace Tracer) Result {
	if trace == nil {
		trace = func(int, Term) {}
	}
	trace(0, t)
	steps := 0
	for {
		next, ok := step(t)
		if !ok {
			return Result{t, steps, Converged}
		}
		if steps >= limit {
			return Result{t, steps, StepLimitReached}
		}
		t = next
		steps++
		trace(steps, t)
	}
}
