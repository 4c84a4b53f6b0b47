package lsystem

import "github.com/pkg/errors"

// Parse-time error kinds. Every one of them aborts the parse in
// progress; there is no partial recovery. They are wrapped with context
// before being returned, so test against them with errors.Is.
var (
	ErrRuleOperator         = errors.New(`rule must contain the "-->" operator exactly once`)
	ErrAxiomParameter       = errors.New("axiom parameter is not a constant numeric expression")
	ErrReplacementParameter = errors.New("replacement parameter is not a valid expression")
	ErrUnbalancedBracket    = errors.New("no matching closing bracket")
)
