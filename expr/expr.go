// Package expr provides the default expression engine, backed by
// govaluate. Expressions are compiled once and evaluated against a fresh
// parameter map on every call.
package expr

import (
	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"

	lsystem "github.com/Bunny83/LSystem"
)

// Engine compiles expression text with govaluate.
type Engine struct{}

var _ lsystem.Engine = Engine{}

// New returns the default engine.
func New() Engine {
	return Engine{}
}

func (Engine) Numeric(src string) (lsystem.Expr, error) {
	evaluable, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", src)
	}
	return numeric{evaluable}, nil
}

func (Engine) Boolean(src string) (lsystem.Cond, error) {
	evaluable, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", src)
	}
	return boolean{evaluable}, nil
}

type numeric struct {
	evaluable *govaluate.EvaluableExpression
}

func (n numeric) Eval(vars lsystem.Vars) (float64, error) {
	res, err := n.evaluable.Evaluate(asParameters(vars))
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating %q", n.evaluable.String())
	}
	f, ok := res.(float64)
	if !ok {
		return 0, errors.Errorf("expression %q is not numeric (got %T)", n.evaluable.String(), res)
	}
	return f, nil
}

type boolean struct {
	evaluable *govaluate.EvaluableExpression
}

func (b boolean) Eval(vars lsystem.Vars) (bool, error) {
	res, err := b.evaluable.Evaluate(asParameters(vars))
	if err != nil {
		return false, errors.Wrapf(err, "evaluating %q", b.evaluable.String())
	}
	v, ok := res.(bool)
	if !ok {
		return false, errors.Errorf("expression %q is not boolean (got %T)", b.evaluable.String(), res)
	}
	return v, nil
}

func asParameters(vars lsystem.Vars) map[string]interface{} {
	if len(vars) == 0 {
		return nil
	}
	params := make(map[string]interface{}, len(vars))
	for name, value := range vars {
		params[name] = value
	}
	return params
}
