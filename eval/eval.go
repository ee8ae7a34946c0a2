// Package eval runs the whole pipeline: parse, convert to de Bruijn form,
// normalize and convert back to named form.
package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/smasher164/untyped/config"
	"github.com/smasher164/untyped/debruijn"
	"github.com/smasher164/untyped/expr"
	"github.com/smasher164/untyped/syntax"
)

type Evaluator struct {
	StrategyName string
	Strategy     debruijn.Strategy
	MaxSteps     int
	Trace        bool
	Log          logrus.FieldLogger
}

// New builds an Evaluator from a validated configuration.
func New(c *config.Config, log logrus.FieldLogger) (*Evaluator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	strategy, err := debruijn.StrategyByName(c.Strategy)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Evaluator{
		StrategyName: c.Strategy,
		Strategy:     strategy,
		MaxSteps:     c.MaxSteps,
		Trace:        c.Trace,
		Log:          log,
	}, nil
}

// Result holds every stage of one evaluation.
type Result struct {
	Input    expr.Expr
	Free     []string
	Term     debruijn.Term
	Normal   debruijn.Result
	Output   expr.Expr
	Strategy string
}

// StepLimitError is returned when normalization stops at the step ceiling
// with a redex left. Term is the partially reduced term.
type StepLimitError struct {
	Limit int
	Term  debruijn.Term
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("no normal form within %d steps", e.Limit)
}

// EvalFile evaluates the trimmed contents of path.
func (ev *Evaluator) EvalFile(path string) (*Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ev.Eval(string(b))
}

// Eval evaluates one expression. On a StepLimitError the returned Result
// still describes the partially reduced term.
func (ev *Evaluator) Eval(src string) (*Result, error) {
	e, err := syntax.Parse(strings.TrimSpace(src))
	if err != nil {
		return nil, err
	}
	term, free := expr.ToTerm(e)
	ev.Log.WithField("free", free).Debugf("parsed %s", term)

	var trace debruijn.Tracer
	if ev.Trace {
		trace = func(step int, t debruijn.Term) {
			ev.Log.WithFields(logrus.Fields{"step": step, "size": debruijn.Size(t)}).Debug(t)
		}
	}
	normal := debruijn.Normalize(term, ev.Strategy, ev.MaxSteps, trace)
	ev.Log.WithFields(logrus.Fields{
		"steps":   normal.Steps,
		"outcome": normal.Outcome,
	}).Debugf("normal form %s", normal.Term)

	res := &Result{
		Input:    e,
		Free:     free,
		Term:     term,
		Normal:   normal,
		Strategy: ev.StrategyName,
	}
	out, err := expr.FromTerm(free, normal.Term)
	if err != nil {
		return nil, errors.Wrapf(err, "recovering names for %s", normal.Term)
	}
	res.Output = out
	if normal.Outcome == debruijn.StepLimitReached {
		return res, &StepLimitError{Limit: ev.MaxSteps, Term: normal.Term}
	}
	return res, nil
}
