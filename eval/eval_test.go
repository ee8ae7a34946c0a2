package eval

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasher164/untyped/config"
	"github.com/smasher164/untyped/debruijn"
	"github.com/smasher164/untyped/expr"
)

func newEvaluator(t *testing.T, mutate func(*config.Config)) (*Evaluator, *logtest.Hook) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	c := config.Default()
	if mutate != nil {
		mutate(c)
	}
	ev, err := New(c, log)
	require.NoError(t, err)
	return ev, hook
}

func TestEval(t *testing.T) {
	ev, _ := newEvaluator(t, nil)
	for _, c := range []struct {
		src  string
		want string
	}{
		{"x", "x"},
		{"(([x] x) y)", "y"},
		{"((([x y] x) a) b)", "a"},
		{"(([x y] x) a b)", "a"},
		{"(([x y] y) a b)", "b"},
		{"(([f x] (f (f x))) g z)", "(g (g z))"},
		{`((\x.(\y.x)) y)`, `(\y_1.y)`},
		{"(([k i o] (k i o)) ([x y] x) ([x] x) (([x] (x x)) ([x] (x x))))", `(\x.x)`},
		{"([x] (([y] y) x))", `(\x.x)`},
		{"(([n f x] (f (n f x))) ([f x] x))", `(\f.(\x.(f x)))`},
	} {
		res, err := ev.Eval(c.src)
		if assert.NoError(t, err, c.src) {
			assert.Equal(t, c.want, res.Output.String(), c.src)
			assert.Equal(t, debruijn.Converged, res.Normal.Outcome, c.src)
		}
	}
}

func TestEvalFreeVariables(t *testing.T) {
	ev, _ := newEvaluator(t, nil)
	res, err := ev.Eval("([x] (w (x y) w))")
	require.NoError(t, err)
	assert.Equal(t, []string{"w", "y"}, res.Free)
	assert.Equal(t, "(λ.((1 (0 2)) 1))", res.Term.String())
	assert.Equal(t, `(\x.((w (x y)) w))`, res.Output.String())
}

func TestEvalStepLimit(t *testing.T) {
	ev, _ := newEvaluator(t, func(c *config.Config) { c.MaxSteps = 5 })
	res, err := ev.Eval("(([x] (x x)) ([x] (x x)))")
	require.Error(t, err)
	var limit *StepLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, 5, limit.Limit)
	assert.Equal(t, KindStepLimit, Kind(err))
	require.NotNil(t, res)
	assert.Equal(t, debruijn.StepLimitReached, res.Normal.Outcome)
	assert.Equal(t, 5, res.Normal.Steps)
	assert.EqualError(t, err, "no normal form within 5 steps")
}

func TestEvalStrategies(t *testing.T) {
	src := "(([x y] y) (([x] (x x)) ([x] (x x))) z)"

	normal, _ := newEvaluator(t, func(c *config.Config) { c.MaxSteps = 50 })
	res, err := normal.Eval(src)
	require.NoError(t, err)
	assert.Equal(t, "z", res.Output.String())

	value, _ := newEvaluator(t, func(c *config.Config) {
		c.MaxSteps = 50
		c.Strategy = "value"
	})
	_, err = value.Eval(src)
	assert.Equal(t, KindStepLimit, Kind(err))
}

func TestEvalParseError(t *testing.T) {
	ev, _ := newEvaluator(t, nil)
	res, err := ev.Eval("(f a")
	assert.Nil(t, res)
	assert.Equal(t, KindParse, Kind(err))
}

func TestEvalFile(t *testing.T) {
	ev, _ := newEvaluator(t, nil)
	_, err := ev.EvalFile(filepath.Join(t.TempDir(), "missing.lc"))
	require.Error(t, err)
	assert.Equal(t, KindIO, Kind(err))
	assert.Contains(t, err.Error(), "missing.lc")
}

func TestEvalTrace(t *testing.T) {
	ev, hook := newEvaluator(t, func(c *config.Config) { c.Trace = true })
	_, err := ev.Eval("(([x y] x) a b)")
	require.NoError(t, err)
	var steps []interface{}
	for _, e := range hook.AllEntries() {
		if step, ok := e.Data["step"]; ok {
			steps = append(steps, step)
		}
	}
	assert.Equal(t, []interface{}{0, 1, 2}, steps)
	assert.Equal(t, "normal form 0", hook.LastEntry().Message)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	c := config.Default()
	c.Strategy = "eager"
	_, err := New(c, nil)
	require.Error(t, err)
	assert.Equal(t, KindConfig, Kind(err))
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindUnresolved, Kind(errors.Wrap(&expr.UnresolvedIndexError{Index: 3}, "recovering names")))
	assert.Equal(t, KindOther, Kind(errors.New("boom")))
}

func TestWrite(t *testing.T) {
	ev, _ := newEvaluator(t, nil)
	res, err := ev.Eval("(([x] x) y)")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, "text"))
	assert.Equal(t, "y\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, res, "json"))
	assert.JSONEq(t, `{
		"input": "((\\x.x) y)",
		"output": "y",
		"free": ["y"],
		"term": "0",
		"strategy": "normal",
		"steps": 1,
		"outcome": "converged"
	}`, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, res, "yaml"))
	assert.YAMLEq(t, `
input: ((\x.x) y)
output: y
free: [y]
term: "0"
strategy: normal
steps: 1
outcome: converged
`, buf.String())

	assert.Error(t, Write(&buf, res, "xml"))
}
