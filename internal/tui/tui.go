// Package tui is the external-collaborator interactive terminal
// front-end: it renders the active sequent, prompts for the next
// command, and reports the engine's effects or errors. It owns no
// proof-engine logic of its own — every keystroke ultimately turns
// into one command.Parse + engine.Execute call.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/willowbrook/natded/internal/command"
	"github.com/willowbrook/natded/internal/engine"
)

var (
	styleGoal   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	styleErr    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleEffect = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	styleHint   = lipgloss.NewStyle().Faint(true)
)

// Session drives an interactive REPL loop against eng until the user
// quits (":q") or input is exhausted.
type Session struct {
	Engine *engine.Engine
	Color  bool
}

// New builds a Session wrapping eng.
func New(eng *engine.Engine, color bool) *Session {
	return &Session{Engine: eng, Color: color}
}

// Run prompts for commands in a loop, printing the resulting sequent
// state and effects after each one, until the user quits.
func (s *Session) Run() error {
	for {
		fmt.Println(s.render())

		var line string
		prompt := huh.NewInput().
			Title("nd>").
			Description("enter a command, or :q to quit").
			Value(&line)

		if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == ":q" || line == "" {
			return nil
		}

		cmd, err := command.Parse(line)
		if err != nil {
			s.printErr(err)
			continue
		}

		effects, err := s.Engine.Execute(cmd)
		if err != nil {
			s.printErr(err)
			continue
		}

		for _, e := range effects {
			s.printEffect(e)
		}
	}
}

func (s *Session) render() string {
	var b strings.Builder
	if s.Engine.Active == nil {
		b.WriteString(s.style(styleHint, "no active proof"))
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(s.style(styleHint, fmt.Sprintf("proving %s (step %d)", s.Engine.Active.Name, s.Engine.Active.Proof.StepCount)))
	b.WriteByte('\n')

	if s.Engine.Active.Proof.IsFinished() {
		b.WriteString(s.style(styleHint, "proof complete — Qed to close"))
		b.WriteByte('\n')
		return b.String()
	}
	b.WriteString(s.Engine.Active.Proof.Active.String())

	if n := len(s.Engine.Active.Proof.Pending); n > 0 {
		b.WriteString(s.style(styleHint, fmt.Sprintf("(%d more goal(s) pending)", n)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *Session) printErr(err error) {
	fmt.Println(s.style(styleErr, "ERROR: "+err.Error()))
}

func (s *Session) printEffect(e engine.Effect) {
	fmt.Println(s.style(styleEffect, e.String()))
}

func (s *Session) style(st lipgloss.Style, text string) string {
	if !s.Color {
		return text
	}
	return st.Render(text)
}
