package lsystem

import "github.com/pkg/errors"

// MatchBracket returns the index of the closing delimiter matching the
// opening delimiter at index open, skipping nested pairs. The byte at
// open must be the opening delimiter itself.
func MatchBracket(s string, open int, opening, closing byte) (int, error) {
	if open < 0 || open >= len(s) || s[open] != opening {
		return 0, errors.Wrapf(ErrUnbalancedBracket, "no opening %q at index %d", opening, open)
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrUnbalancedBracket, "unclosed %q at index %d", opening, open)
}
