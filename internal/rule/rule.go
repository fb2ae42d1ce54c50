// Package rule implements the natural-deduction rule set: the fourteen
// inference rules, their applicability predicates, and their
// sequent-to-sub-sequents transformation semantics.
package rule

import (
	"fmt"

	"github.com/willowbrook/natded/internal/logic"
	"github.com/willowbrook/natded/internal/nderr"
	"github.com/willowbrook/natded/internal/sequent"
)

// Side selects which operand of a binary connective a rule targets.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Type tags a Rule variant without its operands, for applicability
// checks and for the command dispatch table.
type Type int

const (
	TypeAxiom Type = iota
	TypeIntro
	TypeIntros
	TypeTrans
	TypeSplitAnd
	TypeAnd
	TypeKeep
	TypeFromOr
	TypeGeneralize
	TypeFixAs
	TypeConsider
	TypeRenameAs
	TypeFromBottom
	TypeExFalso
)

// AllTypes lists every rule type in declaration order, mirroring the
// closed tagged variant.
func AllTypes() []Type {
	return []Type{
		TypeAxiom, TypeIntro, TypeIntros, TypeTrans, TypeSplitAnd, TypeAnd,
		TypeKeep, TypeFromOr, TypeGeneralize, TypeFixAs, TypeConsider,
		TypeRenameAs, TypeFromBottom, TypeExFalso,
	}
}

// Rule is an inference rule instance, carrying whatever operands its
// variant needs, that can be applied to a sequent.
type Rule interface {
	Type() Type
	String() string
	// Apply returns the ordered list of sub-sequents that replace s
	// (the next one to focus first), or a recoverable error that
	// leaves s untouched.
	Apply(s sequent.Sequent) ([]sequent.Sequent, error)
}

func errGoalForm(format string) *nderr.Error {
	return nderr.NewCommandError("The goal must be in the form %s", format)
}

// ApplicableTypes scans the rule taxonomy and returns the types whose
// lightweight predicate accepts s. It lives here rather than as a
// Sequent method because Go forbids the import cycle a Rust-style
// sequent.get_applicable_rules() would need (sequent would have to
// import rule, and rule already imports sequent for Apply).
func ApplicableTypes(s sequent.Sequent) []Type {
	var out []Type
	for _, t := range AllTypes() {
		if t.IsApplicable(s) {
			out = append(out, t)
		}
	}
	return out
}

// IsApplicable reports whether t's lightweight predicate accepts s.
// "Always applicable" rules can still fail at apply-time if their
// argument is malformed.
func (t Type) IsApplicable(s sequent.Sequent) bool {
	switch t {
	case TypeAxiom:
		return s.Contains(s.Consequent)
	case TypeIntro, TypeIntros:
		switch s.Consequent.(type) {
		case logic.Implies, logic.Forall:
			return true
		}
		return false
	case TypeTrans:
		return true
	case TypeSplitAnd:
		_, ok := s.Consequent.(logic.And)
		return ok
	case TypeAnd:
		return true
	case TypeKeep:
		_, ok := s.Consequent.(logic.Or)
		return ok
	case TypeFromOr:
		return true
	case TypeGeneralize:
		return true
	case TypeFixAs:
		_, ok := s.Consequent.(logic.ExistsFormula)
		return ok
	case TypeConsider:
		return true
	case TypeRenameAs:
		switch s.Consequent.(type) {
		case logic.Forall, logic.ExistsFormula:
			return true
		}
		return false
	case TypeFromBottom:
		return true
	case TypeExFalso:
		_, ok := s.Consequent.(logic.Falsum)
		return ok
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case TypeAxiom:
		return "Axiom"
	case TypeIntro:
		return "Intro"
	case TypeIntros:
		return "Intros"
	case TypeTrans:
		return "Trans"
	case TypeSplitAnd:
		return "SplitAnd"
	case TypeAnd:
		return "And"
	case TypeKeep:
		return "Keep"
	case TypeFromOr:
		return "FromOr"
	case TypeGeneralize:
		return "Generalize"
	case TypeFixAs:
		return "FixAs"
	case TypeConsider:
		return "Consider"
	case TypeRenameAs:
		return "RenameAs"
	case TypeFromBottom:
		return "FromBottom"
	case TypeExFalso:
		return "ExFalso"
	default:
		return "Unknown"
	}
}

// --- Axiom ---

type Axiom struct{}

func (Axiom) Type() Type      { return TypeAxiom }
func (Axiom) String() string  { return "Axiom" }
func (Axiom) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	if s.Contains(s.Consequent) {
		return []sequent.Sequent{}, nil
	}
	return nil, nderr.NewCommandError("Not an axiom")
}

// --- Intro / Intros ---

type Intro struct{}

func (Intro) Type() Type     { return TypeIntro }
func (Intro) String() string { return "Intro" }

func (Intro) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	switch c := s.Consequent.(type) {
	case logic.Implies:
		return []sequent.Sequent{sequent.New(s.Antecedents, c.Right).WithAntecedent(c.Left)}, nil
	case logic.Forall:
		if containsStr(s.Domain(), c.Var) {
			return nil, nderr.NewCommandError("%s already exists", c.Var)
		}
		return []sequent.Sequent{sequent.New(s.Antecedents, c.Body)}, nil
	default:
		return nil, errGoalForm("F => P or forall V, F")
	}
}

type Intros struct{}

func (Intros) Type() Type     { return TypeIntros }
func (Intros) String() string { return "Intros" }

func (Intros) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	seqs := []sequent.Sequent{s}
	for {
		v, err := (Intro{}).Apply(seqs[0])
		if err != nil {
			break
		}
		seqs = v
		if len(seqs) == 0 {
			break
		}
	}
	return seqs, nil
}

// --- Trans ---

type Trans struct{ Formula logic.Formula }

func (Trans) Type() Type        { return TypeTrans }
func (t Trans) String() string  { return fmt.Sprintf("Apply %s", t.Formula) }

func (t Trans) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	implication := logic.Implies{Left: t.Formula, Right: s.Consequent}
	return []sequent.Sequent{
		sequent.New(s.Antecedents, implication),
		sequent.New(s.Antecedents, t.Formula),
	}, nil
}

// --- SplitAnd ---

type SplitAnd struct{}

func (SplitAnd) Type() Type     { return TypeSplitAnd }
func (SplitAnd) String() string { return "SplitAnd" }

func (SplitAnd) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	c, ok := s.Consequent.(logic.And)
	if !ok {
		return nil, errGoalForm("P /\\ Q")
	}
	return []sequent.Sequent{
		sequent.New(s.Antecedents, c.Left),
		sequent.New(s.Antecedents, c.Right),
	}, nil
}

// --- And ---

type And struct {
	Side    Side
	Formula logic.Formula
}

func (And) Type() Type       { return TypeAnd }
func (a And) String() string { return fmt.Sprintf("And %s", a.Side) }

func (a And) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	var and logic.Formula
	if a.Side == Left {
		and = logic.And{Left: a.Formula, Right: s.Consequent}
	} else {
		and = logic.And{Left: s.Consequent, Right: a.Formula}
	}
	return []sequent.Sequent{sequent.New(s.Antecedents, and)}, nil
}

// --- Keep ---

type Keep struct{ Side Side }

func (Keep) Type() Type        { return TypeKeep }
func (k Keep) String() string  { return fmt.Sprintf("Keep %s", k.Side) }

func (k Keep) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	c, ok := s.Consequent.(logic.Or)
	if !ok {
		return nil, errGoalForm("P \\/ Q")
	}
	kept := c.Left
	if k.Side == Right {
		kept = c.Right
	}
	return []sequent.Sequent{sequent.New(s.Antecedents, kept)}, nil
}

// --- FromOr ---

type FromOr struct{ Formula logic.Formula }

func (FromOr) Type() Type     { return TypeFromOr }
func (FromOr) String() string { return "FromOr" }

func (f FromOr) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	or, ok := f.Formula.(logic.Or)
	if !ok {
		return nil, nderr.NewInvalidArguments("Expected a formula in the form P \\/ Q")
	}
	with1 := sequent.New(s.Antecedents, s.Consequent).WithAntecedent(or.Left)
	with2 := sequent.New(s.Antecedents, s.Consequent).WithAntecedent(or.Right)
	return []sequent.Sequent{
		sequent.New(s.Antecedents, f.Formula),
		sequent.New(with1.Antecedents, s.Consequent),
		sequent.New(with2.Antecedents, s.Consequent),
	}, nil
}

// --- Generalize ---

type Generalize struct{ Term logic.Term }

func (Generalize) Type() Type     { return TypeGeneralize }
func (g Generalize) String() string { return fmt.Sprintf("Generalize %s", g.Term) }

func (g Generalize) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	if !s.Consequent.Exists(g.Term) {
		return nil, nderr.NewCommandError("%s not present in the goal", g.Term)
	}
	v := logic.FreshVariable(s.Consequent)
	generalized := s.Consequent.Rewrite(g.Term, logic.Variable(v))
	quantified := logic.Forall{Var: v, Body: generalized}
	return []sequent.Sequent{sequent.New(s.Antecedents, quantified)}, nil
}

// --- FixAs ---

type FixAs struct{ Term logic.Term }

func (FixAs) Type() Type       { return TypeFixAs }
func (f FixAs) String() string { return fmt.Sprintf("FixAs %s", f.Term) }

func (f FixAs) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	c, ok := s.Consequent.(logic.ExistsFormula)
	if !ok {
		return nil, errGoalForm("exists <V>, <F>")
	}
	if s.Consequent.Exists(f.Term) {
		return nil, nderr.NewInvalidArguments("%s already exists", f.Term)
	}
	fixed := c.Body.Rewrite(logic.Variable(c.Var), f.Term)
	return []sequent.Sequent{sequent.New(s.Antecedents, fixed)}, nil
}

// --- Consider ---

type Consider struct{ Formula logic.Formula }

func (Consider) Type() Type     { return TypeConsider }
func (Consider) String() string { return "Consider" }

func (c Consider) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	ex, ok := c.Formula.(logic.ExistsFormula)
	if !ok {
		return nil, nderr.NewInvalidArguments("Expected exists <var>, <Formula>")
	}
	if containsStr(s.Consequent.Domain(), ex.Var) {
		return nil, nderr.NewCommandError("%s already exists in the goal", ex.Var)
	}
	if containsStr(s.Domain(), ex.Var) {
		return nil, nderr.NewCommandError("%s already exists", ex.Var)
	}
	withNf := sequent.New(s.Antecedents, s.Consequent).WithAntecedent(ex.Body)
	goalNf := sequent.New(s.Antecedents, c.Formula)
	return []sequent.Sequent{goalNf, withNf}, nil
}

// --- RenameAs ---

type RenameAs struct{ Name string }

func (RenameAs) Type() Type       { return TypeRenameAs }
func (r RenameAs) String() string { return fmt.Sprintf("Rename %s", r.Name) }

func (r RenameAs) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	switch c := s.Consequent.(type) {
	case logic.ExistsFormula:
		nf := logic.Formula(logic.ExistsFormula{Var: r.Name, Body: c.Body})
		nf = nf.Rewrite(logic.Variable(c.Var), logic.Variable(r.Name))
		return []sequent.Sequent{sequent.New(s.Antecedents, nf)}, nil
	case logic.Forall:
		nf := logic.Formula(logic.Forall{Var: r.Name, Body: c.Body})
		nf = nf.Rewrite(logic.Variable(c.Var), logic.Variable(r.Name))
		return []sequent.Sequent{sequent.New(s.Antecedents, nf)}, nil
	default:
		return nil, errGoalForm("exists <V>, <F> OR forall <V>, <F>")
	}
}

// --- FromBottom ---

type FromBottom struct{}

func (FromBottom) Type() Type     { return TypeFromBottom }
func (FromBottom) String() string { return "FromBottom" }

func (FromBottom) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	var newProp logic.Formula
	if n, ok := s.Consequent.(logic.Not); ok {
		newProp = n.Sub
	} else {
		newProp = logic.Not{Sub: s.Consequent}
	}
	withProp := sequent.New(s.Antecedents, s.Consequent).WithAntecedent(newProp)
	return []sequent.Sequent{sequent.New(withProp.Antecedents, logic.Falsum{})}, nil
}

// --- ExFalso ---

type ExFalso struct{ Formula logic.Formula }

func (ExFalso) Type() Type     { return TypeExFalso }
func (ExFalso) String() string { return "ExFalso" }

func (e ExFalso) Apply(s sequent.Sequent) ([]sequent.Sequent, error) {
	if _, ok := s.Consequent.(logic.Falsum); !ok {
		return nil, errGoalForm("falsum")
	}
	var trueProp, falseProp logic.Formula
	if n, ok := e.Formula.(logic.Not); ok {
		trueProp, falseProp = n.Sub, e.Formula
	} else {
		trueProp, falseProp = e.Formula, logic.Not{Sub: e.Formula}
	}
	return []sequent.Sequent{
		sequent.New(s.Antecedents, trueProp),
		sequent.New(s.Antecedents, falseProp),
	}, nil
}

func containsStr(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
