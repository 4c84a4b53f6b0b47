package lsystem

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Operator separates a rule's left-hand side from its replacement list.
const Operator = "-->"

// minRuleLen is the shortest line worth handing to Rule once a rules:
// section is open; "A-->" spells the shortest possible rule.
const minRuleLen = 4

// Parser turns grammar text into Symbols, Rules and Systems. An
// expression Engine must be supplied; the zero value is not usable.
type Parser struct {
	Engine Engine
}

func NewParser(engine Engine) *Parser {
	return &Parser{Engine: engine}
}

// Axiom parses a ";"-separated symbol list. Parameters are constant
// numeric expressions and are evaluated immediately; a token without a
// parenthesised list is a bare name.
func (p *Parser) Axiom(text string) ([]Symbol, error) {
	var symbols []Symbol
	for _, tok := range strings.Split(text, ";") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		name, args, err := splitToken(tok)
		if err != nil {
			return nil, err
		}

		sym := Symbol{Name: name}
		for _, arg := range args {
			expr, err := p.Engine.Numeric(arg)
			if err != nil {
				return nil, errors.Wrapf(ErrAxiomParameter, "symbol %s: %q: %v", name, arg, err)
			}
			v, err := expr.Eval(nil)
			if err != nil {
				return nil, errors.Wrapf(ErrAxiomParameter, "symbol %s: %q: %v", name, arg, err)
			}
			sym.Parameters = append(sym.Parameters, v)
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// Rule parses a single rule line of the form
//
//	Name(p1,p2): condition --> R1(e1,e2); R2(...); ...
//
// The "-->" operator must appear exactly once. The condition and the
// replacement parameter expressions are compiled here but evaluated only
// at Apply time. Replacement tokens with an empty name are dropped, so a
// blank right-hand side deletes the matched symbol.
func (p *Parser) Rule(text string) (*Rule, error) {
	parts := strings.Split(text, Operator)
	if len(parts) != 2 {
		return nil, errors.Wrapf(ErrRuleOperator, "found %d in %q", len(parts)-1, strings.TrimSpace(text))
	}
	lhs, rhs := parts[0], parts[1]

	var condSrc string
	if i := strings.IndexByte(lhs, ':'); i >= 0 {
		lhs, condSrc = lhs[:i], lhs[i+1:]
	}

	name, params, err := splitToken(lhs)
	if err != nil {
		return nil, err
	}
	rule := &Rule{Name: name, Parameters: params}

	if condSrc = strings.TrimSpace(condSrc); condSrc != "" {
		cond, err := p.Engine.Boolean(condSrc)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %s condition", name)
		}
		rule.Condition = cond
	}

	for _, tok := range strings.Split(rhs, ";") {
		tmplName, args, err := splitToken(tok)
		if err != nil {
			return nil, err
		}
		if tmplName == "" {
			continue
		}
		tmpl := Template{Name: tmplName}
		for _, arg := range args {
			expr, err := p.Engine.Numeric(arg)
			if err != nil {
				return nil, errors.Wrapf(ErrReplacementParameter, "rule %s, template %s: %q: %v", name, tmplName, arg, err)
			}
			tmpl.Parameters = append(tmpl.Parameters, expr)
		}
		rule.Replacement = append(rule.Replacement, tmpl)
	}
	return rule, nil
}

// System parses a full description: an axiom line, an optional count
// line and a rules section.
//
//	Axiom: Fib(1,1)
//	Count: 3
//	Rules:
//	Fib(a,b): a < 5 --> Fib(a+b,a)
//
// Keywords are case-insensitive. Lines before the rules section that
// match no keyword are ignored; once "rules:" has been seen, every
// non-trivial line is a rule regardless of keywords. A malformed count
// is ignored, a well-formed positive one makes the system advance that
// many generations before it is returned.
func (p *Parser) System(text string) (*System, error) {
	var (
		axiom   []Symbol
		rules   []*Rule
		count   int
		inRules bool
	)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if inRules {
			if len(trimmed) >= minRuleLen {
				rule, err := p.Rule(trimmed)
				if err != nil {
					return nil, err
				}
				rules = append(rules, rule)
			}
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "axiom:"):
			var err error
			if axiom, err = p.Axiom(trimmed[len("axiom:"):]); err != nil {
				return nil, err
			}
		case strings.HasPrefix(lower, "count:"):
			if n, err := strconv.Atoi(strings.TrimSpace(trimmed[len("count:"):])); err == nil {
				count = n
			}
		case strings.HasPrefix(lower, "rules:"):
			inRules = true
			if rest := strings.TrimSpace(trimmed[len("rules:"):]); len(rest) >= minRuleLen {
				rule, err := p.Rule(rest)
				if err != nil {
					return nil, err
				}
				rules = append(rules, rule)
			}
		}
	}

	sys := New(axiom, rules)
	if count > 0 {
		if err := sys.Advance(count); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

// splitToken splits "Name(a,b,c)" into its name and raw argument pieces.
// A token without "(" is a bare name; blank pieces are dropped.
func splitToken(tok string) (name string, args []string, err error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 {
		return strings.TrimSpace(tok), nil, nil
	}

	name = strings.TrimSpace(tok[:open])
	end, err := MatchBracket(tok, open, '(', ')')
	if err != nil {
		return "", nil, err
	}
	for _, piece := range strings.Split(tok[open+1:end], ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			args = append(args, piece)
		}
	}
	return name, args, nil
}
