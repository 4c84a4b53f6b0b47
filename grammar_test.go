package lsystem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lsystem "github.com/Bunny83/LSystem"
	"github.com/Bunny83/LSystem/expr"
)

func newParser() *lsystem.Parser {
	return lsystem.NewParser(expr.New())
}

func TestParseAxiom(t *testing.T) {
	symbols, err := newParser().Axiom("Fib(1,1); F; Turn(2*3+1)")
	require.NoError(t, err)

	require.Len(t, symbols, 3)
	assert.Equal(t, "Fib", symbols[0].Name)
	assert.Equal(t, []float64{1, 1}, symbols[0].Parameters)
	assert.Equal(t, "F", symbols[1].Name)
	assert.Empty(t, symbols[1].Parameters)
	assert.Equal(t, "Turn", symbols[2].Name)
	assert.Equal(t, []float64{7}, symbols[2].Parameters)
}

func TestParseAxiomBadParameter(t *testing.T) {
	for _, text := range []string{"F(x)", "F(1+)", "F(,1+,)"} {
		_, err := newParser().Axiom(text)
		assert.ErrorIs(t, err, lsystem.ErrAxiomParameter, "axiom %q", text)
	}
}

func TestParseAxiomUnbalanced(t *testing.T) {
	_, err := newParser().Axiom("F(1,2")
	assert.ErrorIs(t, err, lsystem.ErrUnbalancedBracket)
}

func TestParseRule(t *testing.T) {
	rule, err := newParser().Rule("Fib(a,b): a < 5 --> Fib(a+b,a); G")
	require.NoError(t, err)

	assert.Equal(t, "Fib", rule.Name)
	assert.Equal(t, []string{"a", "b"}, rule.Parameters)
	assert.NotNil(t, rule.Condition)
	require.Len(t, rule.Replacement, 2)
	assert.Equal(t, "Fib", rule.Replacement[0].Name)
	assert.Len(t, rule.Replacement[0].Parameters, 2)
	assert.Equal(t, "G", rule.Replacement[1].Name)
	assert.Empty(t, rule.Replacement[1].Parameters)
}

func TestParseRuleNoCondition(t *testing.T) {
	rule, err := newParser().Rule("A --> B; C")
	require.NoError(t, err)

	assert.Equal(t, "A", rule.Name)
	assert.Empty(t, rule.Parameters)
	assert.Nil(t, rule.Condition)
	assert.Len(t, rule.Replacement, 2)
}

func TestParseRuleEmptyReplacement(t *testing.T) {
	rule, err := newParser().Rule("A --> ")
	require.NoError(t, err)
	assert.Empty(t, rule.Replacement)
}

func TestParseRuleOperatorError(t *testing.T) {
	for _, text := range []string{"A B C", "A --> B --> C", ""} {
		_, err := newParser().Rule(text)
		assert.ErrorIs(t, err, lsystem.ErrRuleOperator, "rule %q", text)
	}
}

func TestParseRuleBadReplacementParameter(t *testing.T) {
	_, err := newParser().Rule("A --> B(1+)")
	assert.ErrorIs(t, err, lsystem.ErrReplacementParameter)
}

func TestParseSystem(t *testing.T) {
	text := strings.Join([]string{
		"generated by hand, ignored preamble",
		"AXIOM: Fib(1,1)",
		"Count: 3",
		"Rules: Fib(a,b): a < 5 --> Fib(a+b,a)",
	}, "\n")

	sys, err := newParser().System(text)
	require.NoError(t, err)
	assert.Equal(t, "Fib(5,3)", sys.String())
}

func TestParseSystemMultilineRules(t *testing.T) {
	text := strings.Join([]string{
		"axiom: A",
		"count: 2",
		"rules:",
		"",
		"A --> A; B",
		"B --> A",
	}, "\n")

	sys, err := newParser().System(text)
	require.NoError(t, err)
	assert.Equal(t, "A; B; A", sys.String())
}

func TestParseSystemBadCountIgnored(t *testing.T) {
	text := strings.Join([]string{
		"axiom: A",
		"count: banana",
		"rules:",
		"A --> A; B",
	}, "\n")

	sys, err := newParser().System(text)
	require.NoError(t, err)
	assert.Equal(t, "A", sys.String(), "a malformed count must leave the system un-advanced")
}

func TestParseSystemLaterAxiomWins(t *testing.T) {
	text := strings.Join([]string{
		"axiom: A",
		"axiom: B(2)",
		"rules:",
	}, "\n")

	sys, err := newParser().System(text)
	require.NoError(t, err)
	assert.Equal(t, "B(2)", sys.String())
}

func TestParseSystemRuleError(t *testing.T) {
	text := strings.Join([]string{
		"axiom: A",
		"rules:",
		"A B C D",
	}, "\n")

	_, err := newParser().System(text)
	assert.ErrorIs(t, err, lsystem.ErrRuleOperator)
}

func TestAxiomRoundTrip(t *testing.T) {
	original := []lsystem.Symbol{
		{Name: "Fib", Parameters: []float64{5, 3}},
		{Name: "F"},
		{Name: "Turn", Parameters: []float64{-90.5}},
	}

	serialized := lsystem.New(original, nil).String()
	reparsed, err := newParser().Axiom(serialized)
	require.NoError(t, err)
	assert.Equal(t, original, reparsed)
}
