// Package proof implements the goal stack that sequences a theorem's
// sub-goals: the active sequent currently being worked on, the pending
// sequents still to prove, and the step counter.
package proof

import (
	"github.com/willowbrook/natded/internal/logic"
	"github.com/willowbrook/natded/internal/nderr"
	"github.com/willowbrook/natded/internal/rule"
	"github.com/willowbrook/natded/internal/sequent"
)

// Proof is the mutable goal stack for a single theorem in progress.
// Active is nil exactly when the proof is finished, and then Pending is
// empty too. Proof exclusively owns its sequents.
type Proof struct {
	InitialGoal logic.Formula
	Active      *sequent.Sequent
	Pending     []sequent.Sequent
	StepCount   uint32
}

// Start begins a new proof of goal: the active sequent is the bare
// goal with no antecedents, nothing is pending, and no steps have been
// taken.
func Start(goal logic.Formula) *Proof {
	active := sequent.New(nil, goal)
	return &Proof{InitialGoal: goal, Active: &active, Pending: nil}
}

// Clone returns a deep copy, so Engine.Execute can attempt a mutation
// on the clone and only swap it into place on success.
func (p *Proof) Clone() *Proof {
	if p == nil {
		return nil
	}
	clone := &Proof{InitialGoal: p.InitialGoal, StepCount: p.StepCount}
	if p.Active != nil {
		a := *p.Active
		a.Antecedents = append([]logic.Formula(nil), p.Active.Antecedents...)
		clone.Active = &a
	}
	clone.Pending = append([]sequent.Sequent(nil), p.Pending...)
	return clone
}

// IsFinished reports whether every goal has been proven.
func (p *Proof) IsFinished() bool { return p.Active == nil }

// RemainingGoals counts the active goal (if any) plus every pending one.
func (p *Proof) RemainingGoals() int {
	n := len(p.Pending)
	if p.Active != nil {
		n++
	}
	return n
}

// ApplicableRules returns the rule types applicable to the active
// sequent, or nil if the proof is finished.
func (p *Proof) ApplicableRules() []rule.Type {
	if p.Active == nil {
		return nil
	}
	return rule.ApplicableTypes(*p.Active)
}

// Apply applies r to the active sequent. On success, the active
// sequent is replaced: the first resulting sub-sequent becomes the new
// active goal, and the rest are prepended to Pending ahead of whatever
// was already there. If r produces no sub-sequents, the next active
// goal is popped off Pending (or the proof becomes finished if Pending
// is empty too). Every failure leaves p entirely unchanged.
func (p *Proof) Apply(r rule.Rule) error {
	if p.Active == nil {
		return nderr.NewCommandError("Proof is finished")
	}

	newSeqs, err := r.Apply(*p.Active)
	if err != nil {
		return err
	}

	if len(newSeqs) > 0 {
		active := newSeqs[0]
		p.Active = &active
		if len(newSeqs) > 1 {
			p.Pending = append(append([]sequent.Sequent(nil), newSeqs[1:]...), p.Pending...)
		}
	} else if len(p.Pending) > 0 {
		active := p.Pending[0]
		p.Active = &active
		p.Pending = p.Pending[1:]
	} else {
		p.Active = nil
	}

	p.StepCount++
	return nil
}

// AddAntecedent pushes f into the active sequent's antecedents, unless
// already present. Fails if the proof is finished.
func (p *Proof) AddAntecedent(f logic.Formula) error {
	if p.Active == nil {
		return nderr.NewCommandError("Proof is finished")
	}
	updated := p.Active.WithAntecedent(f)
	p.Active = &updated
	return nil
}
