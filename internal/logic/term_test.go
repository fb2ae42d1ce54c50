package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableEquality(t *testing.T) {
	assert.True(t, Variable("x").Equal(Variable("x")))
	assert.False(t, Variable("x").Equal(Variable("y")))
	assert.False(t, Variable("x").Equal(Function{Name: "x"}))
}

func TestFunctionEquality(t *testing.T) {
	f1 := Function{Name: "f", Args: []Term{Variable("x"), Variable("y")}}
	f2 := Function{Name: "f", Args: []Term{Variable("x"), Variable("y")}}
	f3 := Function{Name: "f", Args: []Term{Variable("y"), Variable("x")}}
	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(f3))
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "x", Variable("x").String())
	assert.Equal(t, "c", Function{Name: "c"}.String())
	assert.Equal(t, "f(x, y)", Function{Name: "f", Args: []Term{Variable("x"), Variable("y")}}.String())
}

func TestOccurs(t *testing.T) {
	f := Function{Name: "f", Args: []Term{Variable("x"), Function{Name: "g", Args: []Term{Variable("y")}}}}
	assert.True(t, f.Occurs(Variable("x")))
	assert.True(t, f.Occurs(Variable("y")))
	assert.False(t, f.Occurs(Variable("z")))
	assert.True(t, f.Occurs(f))
}

func TestTermRewrite(t *testing.T) {
	f := Function{Name: "f", Args: []Term{Variable("x"), Variable("y")}}
	got := f.Rewrite(Variable("x"), Function{Name: "c"})
	want := Function{Name: "f", Args: []Term{Function{Name: "c"}, Variable("y")}}
	assert.True(t, got.Equal(want))
}

func TestTermDomain(t *testing.T) {
	f := Function{Name: "f", Args: []Term{Variable("x"), Function{Name: "g", Args: []Term{Variable("y")}}}}
	assert.ElementsMatch(t, []string{"x", "y"}, f.Domain())
	assert.Nil(t, Function{Name: "c"}.Domain())
}
