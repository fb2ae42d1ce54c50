// Package sequent represents a natural-deduction sequent: an antecedent
// set plus a single consequent formula.
package sequent

import (
	"strings"

	"github.com/willowbrook/natded/internal/logic"
)

// Sequent is an ordered antecedent list (semantically a set: duplicate
// insertion is rejected) together with a consequent formula.
type Sequent struct {
	Antecedents []logic.Formula
	Consequent  logic.Formula
}

// New builds a Sequent from an antecedent slice and a consequent. The
// antecedent slice is copied so the caller's backing array can't alias
// mutation into the Sequent.
func New(antecedents []logic.Formula, consequent logic.Formula) Sequent {
	ants := append([]logic.Formula(nil), antecedents...)
	return Sequent{Antecedents: ants, Consequent: consequent}
}

// Contains reports whether f is already present among the antecedents.
func (s Sequent) Contains(f logic.Formula) bool {
	for _, a := range s.Antecedents {
		if a.Equal(f) {
			return true
		}
	}
	return false
}

// WithAntecedent returns a copy of s with f appended to its antecedents,
// unless f is already present, in which case s is returned unchanged.
func (s Sequent) WithAntecedent(f logic.Formula) Sequent {
	if s.Contains(f) {
		return s
	}
	ants := append(append([]logic.Formula(nil), s.Antecedents...), f)
	return Sequent{Antecedents: ants, Consequent: s.Consequent}
}

// Domain returns the free variables across every antecedent. The
// consequent does not contribute.
func (s Sequent) Domain() []string {
	var dom []string
	for _, a := range s.Antecedents {
		dom = append(dom, a.Domain()...)
	}
	return dom
}

func (s Sequent) String() string {
	var b strings.Builder
	for _, a := range s.Antecedents {
		b.WriteString("│ ")
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	b.WriteString("│──────────────────────────\n")
	b.WriteString("│ ")
	b.WriteString(s.Consequent.String())
	b.WriteByte('\n')
	return b.String()
}
