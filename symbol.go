package lsystem

import (
	"strconv"
	"strings"
)

// A Symbol is one named, parameterised token of the rewritten sequence.
// Symbols are plain values: every generation produces a fresh sequence
// and no symbol is ever mutated in place.
type Symbol struct {
	Name       string
	Parameters []float64
}

// Symbol stringifier, producing Name or Name(p1,p2,...).
func (s Symbol) String() string {
	if len(s.Parameters) == 0 {
		return s.Name
	}

	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, param := range s.Parameters {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(param, 'f', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
