package eval

import (
	"io/fs"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/smasher164/untyped/expr"
	"github.com/smasher164/untyped/syntax"
)

// Kinds of failure reported by Kind.
const (
	KindParse      = "parse error"
	KindUnresolved = "unresolvable index"
	KindStepLimit  = "step limit reached"
	KindIO         = "i/o error"
	KindConfig     = "invalid configuration"
	KindOther      = "error"
)

// Kind names the failure behind err.
func Kind(err error) string {
	var (
		parseErr     *syntax.ParseError
		unresolved   *expr.UnresolvedIndexError
		stepLimitErr *StepLimitError
		pathErr      *fs.PathError
		multiErr     *multierror.Error
	)
	switch {
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &unresolved):
		return KindUnresolved
	case errors.As(err, &stepLimitErr):
		return KindStepLimit
	case errors.As(err, &pathErr):
		return KindIO
	case errors.As(err, &multiErr):
		return KindConfig
	}
	return KindOther
}
