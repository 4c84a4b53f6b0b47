// Package lsystem implements a parametric Lindenmayer system: a symbol
// sequence rewritten generation by generation through conditional,
// parameterised rules, driven by a small textual grammar.
package lsystem

import "strings"

// A System holds the current symbol sequence and the ordered rule set.
// Rule order encodes priority: the first rule that matches a symbol is
// applied and later rules are never consulted for it. A symbol matching
// no rule is carried into the next generation unchanged.
type System struct {
	rules []*Rule

	// Generations alternate between these two buffers so that advancing
	// does not reallocate on every pass.
	cur  []Symbol
	next []Symbol
}

// New creates a System seeded with the given axiom.
func New(axiom []Symbol, rules []*Rule) *System {
	return &System{
		rules: rules,
		cur:   append([]Symbol(nil), axiom...),
	}
}

// Symbols returns the current generation. The slice is owned by the
// System and invalidated by the next Step; callers must not mutate it.
func (s *System) Symbols() []Symbol {
	return s.cur
}

// Rules returns the ordered rule set.
func (s *System) Rules() []*Rule {
	return s.rules
}

// Step advances the system by one generation, rewriting every symbol
// strictly left to right.
func (s *System) Step() error {
	out := s.next[:0]
	for _, sym := range s.cur {
		matched := false
		var err error
		for _, r := range s.rules {
			out, matched, err = r.Apply(sym, out)
			if err != nil {
				return err
			}
			if matched {
				break
			}
		}
		if !matched {
			out = append(out, sym)
		}
	}

	s.next = s.cur
	s.cur = out
	return nil
}

// Advance performs count generation steps.
func (s *System) Advance(count int) error {
	for i := 0; i < count; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the whole sequence, symbols joined with "; ".
func (s *System) String() string {
	parts := make([]string, len(s.cur))
	for i, sym := range s.cur {
		parts[i] = sym.String()
	}
	return strings.Join(parts, "; ")
}
