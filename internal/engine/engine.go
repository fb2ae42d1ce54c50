// Package engine couples a Context with an optional active proof,
// executing control commands (start/finish/abandon a theorem, import an
// earlier theorem as an antecedent) and rule commands, and recording
// every successfully-applied command to a log.
package engine

import (
	"fmt"

	"github.com/willowbrook/natded/internal/logic"
	"github.com/willowbrook/natded/internal/ndcontext"
	"github.com/willowbrook/natded/internal/nderr"
	"github.com/willowbrook/natded/internal/proof"
	"github.com/willowbrook/natded/internal/rule"
)

// Command is anything Execute can run: a control command (Theorem,
// Use, Qed, Admit) or a RuleCommand wrapping a rule.Rule.
type Command interface {
	commandNode()
	String() string
}

type TheoremCommand struct {
	Name string
	Goal logic.Formula
}

func (TheoremCommand) commandNode() {}
func (c TheoremCommand) String() string {
	return fmt.Sprintf("Thm %s :: %s", c.Name, c.Goal)
}

type UseCommand struct{ Name string }

func (UseCommand) commandNode()     {}
func (c UseCommand) String() string { return fmt.Sprintf("Use %s", c.Name) }

type QedCommand struct{}

func (QedCommand) commandNode()   {}
func (QedCommand) String() string { return "Qed" }

type AdmitCommand struct{}

func (AdmitCommand) commandNode()   {}
func (AdmitCommand) String() string { return "Admit" }

type RuleCommand struct{ Rule rule.Rule }

func (RuleCommand) commandNode()     {}
func (c RuleCommand) String() string { return c.Rule.String() }

// Effect is an observable side effect of a successfully executed
// command.
type Effect interface {
	effectNode()
	String() string
}

type DefinedRelation struct{ Name string }

func (DefinedRelation) effectNode()      {}
func (d DefinedRelation) String() string { return fmt.Sprintf("Defined relation %s", d.Name) }

type DefinedTerm struct{ Name string }

func (DefinedTerm) effectNode()      {}
func (d DefinedTerm) String() string { return fmt.Sprintf("Defined term %s", d.Name) }

type EnteredProofMode struct{}

func (EnteredProofMode) effectNode()   {}
func (EnteredProofMode) String() string { return "Entered proof mode" }

type ExitedProofMode struct{}

func (ExitedProofMode) effectNode()   {}
func (ExitedProofMode) String() string { return "Exited proof mode" }

type NewTheorem struct {
	Name    string
	Formula logic.Formula
}

func (NewTheorem) effectNode() {}
func (n NewTheorem) String() string {
	return fmt.Sprintf("New theorem: %s :: %s", n.Name, n.Formula)
}

func convertContextEffects(in []ndcontext.Effect) []Effect {
	out := make([]Effect, 0, len(in))
	for _, e := range in {
		switch v := e.(type) {
		case ndcontext.DefinedRelation:
			out = append(out, DefinedRelation{Name: v.Name})
		case ndcontext.DefinedTerm:
			out = append(out, DefinedTerm{Name: v.Name})
		}
	}
	return out
}

// ActiveProof names the theorem currently being proven and its goal
// stack.
type ActiveProof struct {
	Name  string
	Proof *proof.Proof
}

// Engine is the top-level object a front-end or script executor drives.
type Engine struct {
	Name       string
	Context    *ndcontext.Context
	Active     *ActiveProof
	CommandLog []Command
}

func New(name string) *Engine {
	return &Engine{Name: name, Context: ndcontext.New()}
}

// formulaArgument extracts the Formula operand a rule carries, if any,
// so it can be passed through a forgiving well-formedness check before
// the rule itself runs. Only the rules that accept a fresh formula
// from the user need this (Trans, And, FromOr, Consider, ExFalso);
// every other rule only rearranges formulas already present in the
// sequent, which were checked when they first entered it.
func formulaArgument(r rule.Rule) (logic.Formula, bool) {
	switch v := r.(type) {
	case rule.Trans:
		return v.Formula, true
	case rule.And:
		return v.Formula, true
	case rule.FromOr:
		return v.Formula, true
	case rule.Consider:
		return v.Formula, true
	case rule.ExFalso:
		return v.Formula, true
	default:
		return nil, false
	}
}

// Execute runs one command to completion. On success it returns the
// ordered effects the command produced and appends the command to the
// log. On failure, every observable field of e (Context, Active,
// CommandLog) is left exactly as it was: every branch below stages its
// work on a clone and only swaps it into e once nothing can fail.
func (e *Engine) Execute(cmd Command) ([]Effect, error) {
	switch c := cmd.(type) {

	case TheoremCommand:
		if e.Active != nil {
			return nil, nderr.NewCommandError("Already proving %s", e.Active.Proof.InitialGoal)
		}
		if err := e.Context.ExpectNotDefined(c.Name); err != nil {
			return nil, err
		}
		ctxClone := e.Context.Clone()
		ctxEffects, err := ctxClone.CheckFormula(c.Goal, true)
		if err != nil {
			return nil, err
		}

		e.Context = ctxClone
		e.Active = &ActiveProof{Name: c.Name, Proof: proof.Start(c.Goal)}
		e.CommandLog = append(e.CommandLog, cmd)

		effects := convertContextEffects(ctxEffects)
		effects = append(effects, EnteredProofMode{})
		return effects, nil

	case UseCommand:
		if e.Active == nil {
			return nil, nderr.NewInvalidCommand(c.String())
		}
		if e.Active.Proof.IsFinished() {
			return nil, nderr.NewCommandError("Proof is finished")
		}
		f, ok := e.Context.Theorems[c.Name]
		if !ok {
			return nil, nderr.NewCommandError("Unknown theorem %s", c.Name)
		}
		proofClone := e.Active.Proof.Clone()
		if err := proofClone.AddAntecedent(f); err != nil {
			return nil, err
		}

		e.Active.Proof = proofClone
		e.CommandLog = append(e.CommandLog, cmd)
		return nil, nil

	case RuleCommand:
		if e.Active == nil {
			return nil, nderr.NewInvalidCommand(c.Rule.String())
		}

		ctxClone := e.Context.Clone()
		var ctxEffects []ndcontext.Effect
		if f, ok := formulaArgument(c.Rule); ok {
			eff, err := ctxClone.CheckFormula(f, true)
			if err != nil {
				return nil, err
			}
			ctxEffects = eff
		}

		proofClone := e.Active.Proof.Clone()
		if err := proofClone.Apply(c.Rule); err != nil {
			return nil, err
		}

		e.Context = ctxClone
		e.Active.Proof = proofClone
		e.CommandLog = append(e.CommandLog, cmd)
		return convertContextEffects(ctxEffects), nil

	case QedCommand:
		if e.Active == nil {
			return nil, nderr.NewInvalidCommand(c.String())
		}
		if !e.Active.Proof.IsFinished() {
			n := e.Active.Proof.RemainingGoals()
			if n == 1 {
				return nil, nderr.NewCommandError("One goal has not been proven yet")
			}
			return nil, nderr.NewCommandError("%d goals have not been proven yet", n)
		}

		name, goal := e.Active.Name, e.Active.Proof.InitialGoal
		ctxClone := e.Context.Clone()
		if err := ctxClone.AddTheorem(name, goal); err != nil {
			return nil, err
		}

		e.Context = ctxClone
		e.Active = nil
		e.CommandLog = append(e.CommandLog, cmd)
		return []Effect{ExitedProofMode{}, NewTheorem{Name: name, Formula: goal}}, nil

	case AdmitCommand:
		if e.Active == nil {
			return nil, nderr.NewInvalidCommand(c.String())
		}

		name, goal := e.Active.Name, e.Active.Proof.InitialGoal
		ctxClone := e.Context.Clone()
		if err := ctxClone.AddTheorem(name, goal); err != nil {
			return nil, err
		}

		e.Context = ctxClone
		e.Active = nil
		e.CommandLog = append(e.CommandLog, cmd)
		return []Effect{ExitedProofMode{}, NewTheorem{Name: name, Formula: goal}}, nil

	default:
		return nil, nderr.NewCommandError("Unable to apply command %s", cmd)
	}
}

// ApplicableRules returns the rule types currently applicable, or nil
// if there is no active proof.
func (e *Engine) ApplicableRules() []rule.Type {
	if e.Active == nil {
		return nil
	}
	return e.Active.Proof.ApplicableRules()
}
