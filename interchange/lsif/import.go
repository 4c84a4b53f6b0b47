package lsif

import (
	"github.com/pkg/errors"

	lsystem "github.com/Bunny83/LSystem"
	"github.com/Bunny83/LSystem/interchange"
)

var ensureInterfaceCompliance interchange.Format = &Format{}

// Import builds a System from the decoded document. A positive Count
// advances the system eagerly, mirroring the count: keyword of the
// textual grammar.
func (format *Format) Import(p *lsystem.Parser) (*lsystem.System, error) {
	axiom, err := p.Axiom(format.Axiom)
	if err != nil {
		return nil, errors.Wrap(err, "importing axiom")
	}

	rules := make([]*lsystem.Rule, 0, len(format.Rules))
	for i, line := range format.Rules {
		rule, err := p.Rule(line)
		if err != nil {
			return nil, errors.Wrapf(err, "importing rule %d", i)
		}
		rules = append(rules, rule)
	}

	sys := lsystem.New(axiom, rules)
	if format.Count > 0 {
		if err := sys.Advance(format.Count); err != nil {
			return nil, errors.Wrap(err, "advancing imported system")
		}
	}
	return sys, nil
}
