package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowbrook/natded/internal/logic"
)

func TestParseBareVariable(t *testing.T) {
	term, err := ParseTerm("x")
	require.NoError(t, err)
	assert.Equal(t, logic.Variable("x"), term)
}

func TestParseZeroArgFunctionDistinctFromVariable(t *testing.T) {
	term, err := ParseTerm("f()")
	require.NoError(t, err)
	assert.Equal(t, logic.Function{Name: "f"}, term)
	assert.False(t, term.Equal(logic.Variable("f")))
}

func TestParseFunctionWithArgs(t *testing.T) {
	term, err := ParseTerm("f(x, g(y))")
	require.NoError(t, err)
	want := logic.Function{Name: "f", Args: []logic.Term{
		logic.Variable("x"),
		logic.Function{Name: "g", Args: []logic.Term{logic.Variable("y")}},
	}}
	assert.True(t, term.Equal(want))
}

func TestParseRelationVsTermDisambiguatedByPosition(t *testing.T) {
	f, err := ParseTerm("x")
	require.NoError(t, err)
	assert.Equal(t, logic.Variable("x"), f)

	formula, err := ParseFormula("P(x)")
	require.NoError(t, err)
	assert.True(t, formula.Equal(logic.Relation{Name: "P", Args: []logic.Term{logic.Variable("x")}}))
}

func TestParseFalsum(t *testing.T) {
	f, err := ParseFormula("falsum")
	require.NoError(t, err)
	assert.Equal(t, logic.Falsum{}, f)
}

func TestParseNotBindsTighterThanAnd(t *testing.T) {
	f, err := ParseFormula("~P(x) /\\ Q(x)")
	require.NoError(t, err)
	want := logic.And{
		Left:  logic.Not{Sub: logic.Relation{Name: "P", Args: []logic.Term{logic.Variable("x")}}},
		Right: logic.Relation{Name: "Q", Args: []logic.Term{logic.Variable("x")}},
	}
	assert.True(t, f.Equal(want))
}

func TestParseAndBindsTighterThanOr(t *testing.T) {
	f, err := ParseFormula("P \\/ Q /\\ R")
	require.NoError(t, err)
	want := logic.Or{
		Left:  logic.Relation{Name: "P"},
		Right: logic.And{Left: logic.Relation{Name: "Q"}, Right: logic.Relation{Name: "R"}},
	}
	assert.True(t, f.Equal(want))
}

func TestParseImpliesIsRightAssociative(t *testing.T) {
	f, err := ParseFormula("P => Q => R")
	require.NoError(t, err)
	want := logic.Implies{
		Left:  logic.Relation{Name: "P"},
		Right: logic.Implies{Left: logic.Relation{Name: "Q"}, Right: logic.Relation{Name: "R"}},
	}
	assert.True(t, f.Equal(want))
}

func TestParseQuantifiers(t *testing.T) {
	f, err := ParseFormula("forall x, exists y, P(x, y)")
	require.NoError(t, err)
	want := logic.Forall{Var: "x", Body: logic.ExistsFormula{
		Var: "y",
		Body: logic.Relation{Name: "P", Args: []logic.Term{
			logic.Variable("x"), logic.Variable("y"),
		}},
	}}
	assert.True(t, f.Equal(want))
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	f, err := ParseFormula("(P \\/ Q) /\\ R")
	require.NoError(t, err)
	want := logic.And{
		Left:  logic.Or{Left: logic.Relation{Name: "P"}, Right: logic.Relation{Name: "Q"}},
		Right: logic.Relation{Name: "R"},
	}
	assert.True(t, f.Equal(want))
}

func TestParsePrimedIdentifierRoundTrips(t *testing.T) {
	term, err := ParseTerm("x'")
	require.NoError(t, err)
	assert.Equal(t, logic.Variable("x'"), term)
	assert.Equal(t, "x'", term.String())

	f, err := ParseFormula("forall x', P(x')")
	require.NoError(t, err)
	want := logic.Forall{Var: "x'", Body: logic.Relation{Name: "P", Args: []logic.Term{logic.Variable("x'")}}}
	assert.True(t, f.Equal(want))
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := ParseFormula("P(x) Q(y)")
	assert.Error(t, err)
}

func TestParseRejectsUnexpectedCharacter(t *testing.T) {
	_, err := ParseFormula("P(x) & Q(y)")
	assert.Error(t, err)
}
