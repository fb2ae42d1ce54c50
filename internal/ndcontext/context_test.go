package ndcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowbrook/natded/internal/logic"
)

func rel(name string, args ...logic.Term) logic.Formula {
	return logic.Relation{Name: name, Args: args}
}

func TestAddTheoremRejectsDuplicate(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTheorem("T", rel("P")))
	assert.Error(t, c.AddTheorem("T", rel("Q")))
}

func TestDisjointness(t *testing.T) {
	c := New()
	require.NoError(t, c.AddRelation("R"))
	assert.Error(t, c.AddTheorem("R", rel("P")))
	assert.Error(t, c.AddTerm("R"))
}

func TestCheckFormulaForgivingAutoDeclares(t *testing.T) {
	c := New()
	effects, err := c.CheckFormula(rel("P", logic.Function{Name: "c"}), true)
	require.NoError(t, err)
	require.Len(t, effects, 2)
	assert.Contains(t, effects, Effect(DefinedRelation{Name: "P"}))
	assert.Contains(t, effects, Effect(DefinedTerm{Name: "c"}))

	_, ok := c.GetType("P")
	require.True(t, ok)
	vt, _ := c.GetType("P")
	assert.Equal(t, Relation, vt)
}

func TestCheckFormulaStrictAcceptsUnknown(t *testing.T) {
	c := New()
	_, err := c.CheckFormula(rel("P"), false)
	assert.NoError(t, err, "an unknown relation in strict mode is left undeclared, not rejected")
}

func TestCheckFormulaRejectsRoleClash(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTerm("f"))
	_, err := c.CheckFormula(rel("f"), true)
	assert.Error(t, err)
}

func TestCheckFormulaRejectsQuantifierShadowingKnownName(t *testing.T) {
	c := New()
	require.NoError(t, c.AddRelation("x"))
	_, err := c.CheckFormula(logic.Forall{Var: "x", Body: rel("P")}, true)
	assert.Error(t, err)
}

func TestCheckTermRejectsRelationUsedAsTerm(t *testing.T) {
	c := New()
	require.NoError(t, c.AddRelation("r"))
	_, err := c.CheckTerm(logic.Variable("r"), true)
	assert.Error(t, err)

	_, err = c.CheckTerm(logic.Function{Name: "r"}, true)
	assert.Error(t, err)
}

func TestCheckFormulaAutoDeclaresBareVariableAsTerm(t *testing.T) {
	c := New()
	effects, err := c.CheckFormula(rel("P", logic.Variable("x")), true)
	require.NoError(t, err)
	assert.Contains(t, effects, Effect(DefinedRelation{Name: "P"}))
	assert.Contains(t, effects, Effect(DefinedTerm{Name: "x"}))

	vt, ok := c.GetType("x")
	require.True(t, ok)
	assert.Equal(t, Term, vt)
}

func TestCheckFormulaDoesNotDeclareQuantifierBoundVariableAsTerm(t *testing.T) {
	c := New()
	_, err := c.CheckFormula(logic.Forall{
		Var:  "x",
		Body: rel("P", logic.Variable("x")),
	}, true)
	require.NoError(t, err)

	_, ok := c.GetType("x")
	assert.False(t, ok, "a quantifier-bound variable must not become a permanent context term")
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	require.NoError(t, c.AddRelation("R"))
	clone := c.Clone()
	require.NoError(t, clone.AddRelation("S"))
	_, ok := c.GetType("S")
	assert.False(t, ok)
}
