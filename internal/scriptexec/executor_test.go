package scriptexec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowbrook/natded/internal/engine"
)

func TestParseStepsSplitsOnPeriod(t *testing.T) {
	steps, err := ParseSteps("Thm id :: P => P. intro. axiom.")
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "Thm id :: P => P", steps[0].Text)
	assert.Equal(t, "intro", steps[1].Text)
	assert.Equal(t, "axiom", steps[2].Text)
}

func TestParseStepsSkipsLineComments(t *testing.T) {
	steps, err := ParseSteps("axiom. // this closes the goal\nintro.")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "axiom", steps[0].Text)
	assert.Equal(t, "intro", steps[1].Text)
}

func TestParseStepsTracksLineAndColumn(t *testing.T) {
	steps, err := ParseSteps("axiom.\nintro.")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].StartLine)
	assert.Equal(t, 1, steps[1].StartLine)
}

func TestParseStepsRejectsTrailingIncompleteStep(t *testing.T) {
	_, err := ParseSteps("axiom. intro")
	assert.Error(t, err)
}

func TestParseStepsIgnoresTrailingWhitespaceOnlyTail(t *testing.T) {
	steps, err := ParseSteps("axiom.   \n\n")
	require.NoError(t, err)
	assert.Len(t, steps, 1)
}

func TestExecAllRunsEveryStepOfCompleteScript(t *testing.T) {
	steps, err := ParseSteps("Thm id :: P => P. intro. axiom. Qed.")
	require.NoError(t, err)
	ex := &Executor{Path: "test", Steps: steps}
	eng := engine.New("test")

	results, err := ex.ExecAll(eng)
	require.NoError(t, err)
	assert.Len(t, results, 4)
	assert.Nil(t, eng.Active)
}

func TestExecAllReportsStepOfFailure(t *testing.T) {
	steps, err := ParseSteps("Thm id :: P. axiom.")
	require.NoError(t, err)
	ex := &Executor{Path: "test", Steps: steps}
	eng := engine.New("test")

	_, err = ex.ExecAll(eng)
	require.Error(t, err)
	se, ok := err.(*StepError)
	require.True(t, ok)
	assert.Equal(t, "axiom", se.Step.Text)
}

func TestFromFileReadsAndSplitsSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.nd")
	require.NoError(t, os.WriteFile(path, []byte("axiom. intro."), 0o644))

	ex, err := FromFile(path)
	require.NoError(t, err)
	assert.Len(t, ex.Steps, 2)
}

func TestFromFileRejectsEmptyScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.nd")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	_, err := FromFile(path)
	assert.Error(t, err)
}

func TestFromFileRejectsMissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.nd"))
	assert.Error(t, err)
}

func TestExecAllFailsOnUnfinishedProofAtEOF(t *testing.T) {
	steps, err := ParseSteps("Thm id :: P /\\ Q. split.")
	require.NoError(t, err)
	ex := &Executor{Path: "test", Steps: steps}
	eng := engine.New("test")

	_, err = ex.ExecAll(eng)
	require.Error(t, err)
	se, ok := err.(*StepError)
	require.True(t, ok)
	assert.Equal(t, "split", se.Step.Text)
}
