package lsystem

import "github.com/pkg/errors"

// A Template is one element of a rule's right-hand side: a symbol name
// plus one unevaluated numeric expression per parameter.
type Template struct {
	Name       string
	Parameters []Expr
}

// Generate evaluates the template's parameter expressions against the
// bindings of the current match and produces a concrete Symbol.
func (t Template) Generate(vars Vars) (Symbol, error) {
	if len(t.Parameters) == 0 {
		return Symbol{Name: t.Name}, nil
	}

	params := make([]float64, len(t.Parameters))
	for i, e := range t.Parameters {
		v, err := e.Eval(vars)
		if err != nil {
			return Symbol{}, errors.Wrapf(err, "template %s parameter %d", t.Name, i)
		}
		params[i] = v
	}
	return Symbol{Name: t.Name, Parameters: params}, nil
}

// A Rule rewrites one symbol into zero or more replacement symbols. A
// symbol matches when its name equals the rule's and, if the rule
// declares parameter names, their count equals the symbol's parameter
// count. The optional condition then guards the match, evaluated against
// the bound parameter values.
type Rule struct {
	Name        string
	Parameters  []string
	Condition   Cond
	Replacement []Template
}

// Apply tries the rule on current. On a match the replacement symbols
// are appended to out; the grown slice is returned along with whether
// the rule fired. Bindings are built fresh per call, so a Rule may be
// applied from any number of contexts at once.
//
// A rule declaring no parameter names matches a symbol of any arity and
// discards the symbol's parameter values.
func (r *Rule) Apply(current Symbol, out []Symbol) ([]Symbol, bool, error) {
	if current.Name != r.Name {
		return out, false, nil
	}

	var vars Vars
	if len(r.Parameters) > 0 {
		if len(r.Parameters) != len(current.Parameters) {
			return out, false, nil
		}
		vars = make(Vars, len(r.Parameters))
		for i, name := range r.Parameters {
			vars[name] = current.Parameters[i]
		}
	}

	if r.Condition != nil {
		ok, err := r.Condition.Eval(vars)
		if err != nil {
			return out, false, errors.Wrapf(err, "rule %s condition", r.Name)
		}
		if !ok {
			return out, false, nil
		}
	}

	for _, t := range r.Replacement {
		sym, err := t.Generate(vars)
		if err != nil {
			return out, false, errors.Wrapf(err, "rule %s", r.Name)
		}
		out = append(out, sym)
	}
	return out, true, nil
}
