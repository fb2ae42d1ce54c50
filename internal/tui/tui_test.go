package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowbrook/natded/internal/command"
	"github.com/willowbrook/natded/internal/engine"
	"github.com/willowbrook/natded/internal/logic"
	"github.com/willowbrook/natded/internal/nderr"
)

func TestRenderShowsNoActiveProof(t *testing.T) {
	s := New(engine.New("demo"), false)
	assert.Contains(t, s.render(), "no active proof")
}

func TestRenderShowsProofNameAndActiveGoal(t *testing.T) {
	eng := engine.New("demo")
	_, err := eng.Execute(engine.TheoremCommand{
		Name: "t",
		Goal: logic.And{
			Left:  logic.Relation{Name: "P"},
			Right: logic.Relation{Name: "Q"},
		},
	})
	require.NoError(t, err)

	s := New(eng, false)
	out := s.render()
	assert.Contains(t, out, "proving t (step 0)")
	assert.Contains(t, out, "Q")
}

func TestRenderDoesNotPanicOnFinishedUnclosedProof(t *testing.T) {
	eng := engine.New("demo")
	_, err := eng.Execute(engine.TheoremCommand{
		Name: "id",
		Goal: logic.Implies{Left: logic.Relation{Name: "A"}, Right: logic.Relation{Name: "A"}},
	})
	require.NoError(t, err)

	introCmd, err := command.Parse("intro")
	require.NoError(t, err)
	_, err = eng.Execute(introCmd)
	require.NoError(t, err)

	axiomCmd, err := command.Parse("axiom")
	require.NoError(t, err)
	_, err = eng.Execute(axiomCmd)
	require.NoError(t, err)

	s := New(eng, false)
	var out string
	assert.NotPanics(t, func() { out = s.render() })
	assert.Contains(t, out, "proof complete")
}

func TestStyleNoopWithoutColor(t *testing.T) {
	s := New(engine.New("demo"), false)
	assert.Equal(t, "hello", s.style(styleErr, "hello"))
}

func TestStyleAppliesColor(t *testing.T) {
	s := New(engine.New("demo"), true)
	rendered := s.style(styleErr, "hello")
	assert.Contains(t, rendered, "hello")
}

func TestPrintErrWritesToStdout(t *testing.T) {
	s := New(engine.New("demo"), false)
	out := captureStdout(t, func() {
		s.printErr(nderr.NewCommandError("boom"))
	})
	assert.True(t, strings.Contains(out, "ERROR: boom"))
}

func TestPrintEffectWritesToStdout(t *testing.T) {
	s := New(engine.New("demo"), false)
	out := captureStdout(t, func() {
		s.printEffect(engine.ExitedProofMode{})
	})
	assert.NotEmpty(t, out)
}
