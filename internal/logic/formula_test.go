package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func p(name string, args ...Term) Formula { return Relation{Name: name, Args: args} }

func TestPrettyPrintPrecedence(t *testing.T) {
	x, y := Variable("x"), Variable("y")
	px, py := p("P", x), p("Q", y)

	assert.Equal(t, "P(x)", px.String())
	assert.Equal(t, "~P(x)", Not{Sub: px}.String())
	assert.Equal(t, "~(~P(x))", Not{Sub: Not{Sub: px}}.String())

	and := And{Left: px, Right: py}
	assert.Equal(t, "P(x) /\\ Q(y)", and.String())

	// And is left-assoc: nested And on the left prints unparenthesized,
	// nested And on the right needs parens.
	nestedLeft := And{Left: and, Right: px}
	assert.Equal(t, "P(x) /\\ Q(y) /\\ P(x)", nestedLeft.String())
	nestedRight := And{Left: px, Right: and}
	assert.Equal(t, "P(x) /\\ (P(x) /\\ Q(y))", nestedRight.String())

	// Implies is right-assoc: the reverse nesting pattern.
	impl := Implies{Left: px, Right: py}
	nestedImplLeft := Implies{Left: impl, Right: px}
	assert.Equal(t, "(P(x) => Q(y)) => P(x)", nestedImplLeft.String())
	nestedImplRight := Implies{Left: px, Right: impl}
	assert.Equal(t, "P(x) => P(x) => Q(y)", nestedImplRight.String())

	assert.Equal(t, "forall x, P(x)", Forall{Var: "x", Body: px}.String())
	assert.Equal(t, "exists x, P(x)", ExistsFormula{Var: "x", Body: px}.String())
}

func TestFormulaEqual(t *testing.T) {
	x, y := Variable("x"), Variable("y")
	a := And{Left: p("P", x), Right: p("Q", y)}
	b := And{Left: p("P", x), Right: p("Q", y)}
	c := And{Left: p("P", x), Right: p("Q", x)}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(p("P", x)))
}

func TestFormulaDomainBinding(t *testing.T) {
	// forall x, P(x) /\ Q(y): x is bound, y is free.
	f := Forall{Var: "x", Body: And{Left: p("P", Variable("x")), Right: p("Q", Variable("y"))}}
	assert.Equal(t, []string{"y"}, f.Domain())
}

func TestFormulaDomainDedupsAndSorts(t *testing.T) {
	f := And{Left: p("P", Variable("b"), Variable("a")), Right: p("Q", Variable("a"), Variable("c"))}
	assert.Equal(t, []string{"a", "b", "c"}, f.Domain())
}

func TestFreshVariableAvoidsDomain(t *testing.T) {
	f := p("P", Variable("x"), Variable("y"), Variable("z"))
	assert.Equal(t, "w", FreshVariable(f))
}

func TestFreshVariableExhaustsAlphabetThenPrimes(t *testing.T) {
	args := make([]Term, len(variableOrder))
	for i, c := range variableOrder {
		args[i] = Variable(string(c))
	}
	f := p("P", args...)
	assert.Equal(t, "x'", FreshVariable(f))
}

func TestFormulaRewrite(t *testing.T) {
	f := Forall{Var: "x", Body: p("P", Variable("x"), Variable("y"))}
	got := f.Rewrite(Variable("y"), Function{Name: "c"})
	want := Forall{Var: "x", Body: p("P", Variable("x"), Function{Name: "c"})}
	assert.True(t, got.Equal(want))
}

func TestFormulaExists(t *testing.T) {
	f := And{Left: p("P", Variable("x")), Right: p("Q", Variable("y"))}
	assert.True(t, f.Exists(Variable("x")))
	assert.True(t, f.Exists(Variable("y")))
	assert.False(t, f.Exists(Variable("z")))
}
