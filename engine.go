package lsystem

// Vars holds the variable bindings an expression is evaluated against.
// A fresh binding set is built for every rule application, so an
// expression never observes values left over from a previous match.
type Vars map[string]float64

// Expr is a compiled numeric expression.
type Expr interface {
	Eval(vars Vars) (float64, error)
}

// Cond is a compiled boolean expression.
type Cond interface {
	Eval(vars Vars) (bool, error)
}

// Engine compiles expression source text. The expr package provides the
// default implementation; the grammar only depends on this interface.
type Engine interface {
	// Numeric compiles src into a numeric expression. Compilation must
	// fail with an error, not a panic, on invalid input.
	Numeric(src string) (Expr, error)

	// Boolean compiles src into a boolean expression.
	Boolean(src string) (Cond, error)
}
