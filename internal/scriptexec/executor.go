// Package scriptexec is the external-collaborator file executor: it
// segments a script into command steps and drives them through an
// engine.Engine, reporting the line/column range of whichever step
// first fails.
package scriptexec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/willowbrook/natded/internal/command"
	"github.com/willowbrook/natded/internal/engine"
	"github.com/willowbrook/natded/internal/nderr"
)

const stepSep = '.'

// Step is one command extracted from a script, bounded by '.'. Lines
// and columns are 0-based and inclusive on both ends.
type Step struct {
	Text                         string
	StartLine, StartCol          int
	EndLine, EndCol              int
}

// Executor reads a script file and runs its steps against an Engine.
type Executor struct {
	Path  string
	Steps []Step
}

// FromFile reads path and splits it into steps. An unreadable file is
// UnableToRead; a file with no steps at all is EmptyFile.
func FromFile(path string) (*Executor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nderr.NewUnableToRead()
	}
	steps, err := ParseSteps(string(content))
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, nderr.NewEmptyFile(filepath.Base(path))
	}
	return &Executor{Path: path, Steps: steps}, nil
}

// ParseSteps splits content into trimmed steps separated by '.',
// skipping "//"-to-end-of-line comments and tracking 0-based line and
// column for each step's start and end. A non-empty trailing buffer
// with no terminating '.' is UnexpectedEOF.
func ParseSteps(content string) ([]Step, error) {
	var steps []Step

	lineNb, colNb := 0, 0
	var buf []rune
	newBuf := true
	var bufStart [2]int

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case c == '\r':
			colNb++
			continue

		case c == '\n':
			lineNb++
			colNb = 0
			continue

		case c == '/' && i+1 < len(runes) && runes[i+1] == '/':
			for i < len(runes) && runes[i] != '\n' {
				i++
				colNb++
			}
			i--
			continue

		case c == stepSep:
			if len(buf) > 0 {
				steps = append(steps, Step{
					Text:      strings.TrimSpace(string(buf)),
					StartLine: bufStart[0], StartCol: bufStart[1],
					EndLine: lineNb, EndCol: colNb - 1,
				})
			}
			newBuf = true
			buf = buf[:0]
			colNb++
			continue
		}

		if newBuf {
			newBuf = false
			bufStart = [2]int{lineNb, colNb}
		}
		colNb++
		buf = append(buf, c)
	}

	if len(strings.TrimSpace(string(buf))) > 0 {
		return nil, nderr.NewUnexpectedEOF()
	}

	return steps, nil
}

// Result pairs a step with the command it denoted, once dispatched.
type Result struct {
	Step    Step
	Command engine.Command
	Effects []engine.Effect
}

// ExecAll runs every step against eng in order, stopping at the first
// failing step. If every step succeeds but the engine is left mid-proof
// at EOF, that is itself a failure (UnfinishedProof) attributed to the
// final step.
func (ex *Executor) ExecAll(eng *engine.Engine) ([]Result, error) {
	results := make([]Result, 0, len(ex.Steps))
	for _, step := range ex.Steps {
		cmd, err := command.Parse(step.Text)
		if err != nil {
			return results, &StepError{Step: step, Err: err}
		}
		effects, err := eng.Execute(cmd)
		if err != nil {
			return results, &StepError{Step: step, Err: err}
		}
		results = append(results, Result{Step: step, Command: cmd, Effects: effects})
	}

	if eng.Active != nil {
		last := ex.Steps[len(ex.Steps)-1]
		return results, &StepError{Step: last, Err: nderr.NewUnfinishedProof()}
	}

	return results, nil
}

// StepError attributes a core error to the script step that triggered
// it, so the front-end can print a source-location line alongside the
// message.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string { return e.Err.Error() }
func (e *StepError) Unwrap() error { return e.Err }
