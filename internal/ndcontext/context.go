// Package ndcontext implements the Context: the engine-level registry
// of theorem, relation and term names, its disjointness invariant, and
// the well-formedness checks ("forgiving" or strict) that formulas and
// terms must pass before they can be used.
package ndcontext

import (
	"fmt"

	"github.com/willowbrook/natded/internal/logic"
	"github.com/willowbrook/natded/internal/nderr"
)

// ValueType names which of the three disjoint maps an identifier
// belongs to.
type ValueType int

const (
	Theorem ValueType = iota
	Relation
	Term
)

func (v ValueType) String() string {
	switch v {
	case Theorem:
		return "theorem"
	case Relation:
		return "relation"
	case Term:
		return "term"
	default:
		return "unknown"
	}
}

// Effect records an observable side effect of a well-formedness check:
// an identifier that was silently declared because forgiving mode was
// on and it had never been seen before.
type Effect interface {
	effectNode()
	String() string
}

type DefinedRelation struct{ Name string }

func (DefinedRelation) effectNode()     {}
func (d DefinedRelation) String() string { return fmt.Sprintf("Defined relation %s", d.Name) }

type DefinedTerm struct{ Name string }

func (DefinedTerm) effectNode()     {}
func (d DefinedTerm) String() string { return fmt.Sprintf("Defined term %s", d.Name) }

// Context is the disjoint name registry. No identifier may appear in
// more than one of Theorems, Relations, Terms.
type Context struct {
	Theorems  map[string]logic.Formula
	Relations map[string]struct{}
	Terms     map[string]struct{}
}

func New() *Context {
	return &Context{
		Theorems:  map[string]logic.Formula{},
		Relations: map[string]struct{}{},
		Terms:     map[string]struct{}{},
	}
}

// Clone returns a deep copy, used by the Engine to stage a command's
// context mutations and commit them only on success.
func (c *Context) Clone() *Context {
	clone := New()
	for k, v := range c.Theorems {
		clone.Theorems[k] = v
	}
	for k := range c.Relations {
		clone.Relations[k] = struct{}{}
	}
	for k := range c.Terms {
		clone.Terms[k] = struct{}{}
	}
	return clone
}

// GetType returns which mapping ident belongs to, if any.
func (c *Context) GetType(ident string) (ValueType, bool) {
	if _, ok := c.Theorems[ident]; ok {
		return Theorem, true
	}
	if _, ok := c.Relations[ident]; ok {
		return Relation, true
	}
	if _, ok := c.Terms[ident]; ok {
		return Term, true
	}
	return 0, false
}

// ExpectNotDefined fails with AlreadyExists if ident is defined
// anywhere in the context.
func (c *Context) ExpectNotDefined(ident string) error {
	if vt, ok := c.GetType(ident); ok {
		return nderr.NewAlreadyExists("'%s' is already a %s", ident, vt)
	}
	return nil
}

func (c *Context) AddTheorem(ident string, f logic.Formula) error {
	if err := c.ExpectNotDefined(ident); err != nil {
		return err
	}
	c.Theorems[ident] = f
	return nil
}

func (c *Context) AddRelation(ident string) error {
	if err := c.ExpectNotDefined(ident); err != nil {
		return err
	}
	c.Relations[ident] = struct{}{}
	return nil
}

func (c *Context) AddTerm(ident string) error {
	if err := c.ExpectNotDefined(ident); err != nil {
		return err
	}
	c.Terms[ident] = struct{}{}
	return nil
}

// CheckFormula walks f, verifying that every relation/term name it
// uses matches its previously-declared role in the context. In
// forgiving mode, an unknown relation or term name is auto-declared and
// the declaration is reported back as an Effect; in strict mode an
// unknown name is accepted without being declared. Quantifier-bound variables must not shadow any name already
// known to the context, and their bound occurrences inside the body
// are never themselves auto-declared as permanent context terms.
func (c *Context) CheckFormula(f logic.Formula, forgiving bool) ([]Effect, error) {
	return c.checkFormula(f, forgiving, nil)
}

func (c *Context) checkFormula(f logic.Formula, forgiving bool, bound map[string]struct{}) ([]Effect, error) {
	switch n := f.(type) {
	case logic.Relation:
		if _, ok := c.Terms[n.Name]; ok {
			return nil, nderr.NewInvalidFormula(f, "'%s' used as a relation but defined as a term", n.Name)
		}
		var effects []Effect
		if _, ok := c.Relations[n.Name]; !ok && forgiving {
			if err := c.AddRelation(n.Name); err != nil {
				return nil, err
			}
			effects = append(effects, DefinedRelation{Name: n.Name})
		}
		for _, t := range n.Args {
			e, err := c.checkTerm(t, forgiving, bound)
			if err != nil {
				return nil, err
			}
			effects = append(effects, e...)
		}
		return effects, nil

	case logic.Forall:
		if err := c.ExpectNotDefined(n.Var); err != nil {
			return nil, err
		}
		return c.checkFormula(n.Body, forgiving, withBound(bound, n.Var))

	case logic.ExistsFormula:
		if err := c.ExpectNotDefined(n.Var); err != nil {
			return nil, err
		}
		return c.checkFormula(n.Body, forgiving, withBound(bound, n.Var))

	case logic.And:
		return c.checkTwo(n.Left, n.Right, forgiving, bound)
	case logic.Or:
		return c.checkTwo(n.Left, n.Right, forgiving, bound)
	case logic.Implies:
		return c.checkTwo(n.Left, n.Right, forgiving, bound)

	case logic.Not:
		return c.checkFormula(n.Sub, forgiving, bound)

	case logic.Falsum:
		return nil, nil

	default:
		return nil, nil
	}
}

func (c *Context) checkTwo(l, r logic.Formula, forgiving bool, bound map[string]struct{}) ([]Effect, error) {
	var effects []Effect
	e1, err := c.checkFormula(l, forgiving, bound)
	if err != nil {
		return nil, err
	}
	effects = append(effects, e1...)
	e2, err := c.checkFormula(r, forgiving, bound)
	if err != nil {
		return nil, err
	}
	effects = append(effects, e2...)
	return effects, nil
}

// withBound returns a copy of bound with v added, leaving the original
// untouched so sibling branches of And/Or/Implies don't see each
// other's bindings.
func withBound(bound map[string]struct{}, v string) map[string]struct{} {
	nb := make(map[string]struct{}, len(bound)+1)
	for k := range bound {
		nb[k] = struct{}{}
	}
	nb[v] = struct{}{}
	return nb
}

// CheckTerm dually verifies a term: both a bare Variable and a
// Function fail only if their name is a known relation, and both may
// be auto-declared as a term in forgiving mode if previously unseen. A
// Variable bound by an enclosing quantifier is never declared; a
// Function head is declared whether or not it is bound.
func (c *Context) CheckTerm(t logic.Term, forgiving bool) ([]Effect, error) {
	return c.checkTerm(t, forgiving, nil)
}

func (c *Context) checkTerm(t logic.Term, forgiving bool, bound map[string]struct{}) ([]Effect, error) {
	switch n := t.(type) {
	case logic.Variable:
		name := string(n)
		if _, ok := c.Relations[name]; ok {
			return nil, nderr.NewInvalidTerm(t, "'%s' used as a term but defined as a relation", name)
		}
		if _, isBound := bound[name]; isBound {
			return nil, nil
		}
		if _, ok := c.Terms[name]; !ok && forgiving {
			if err := c.AddTerm(name); err != nil {
				return nil, err
			}
			return []Effect{DefinedTerm{Name: name}}, nil
		}
		return nil, nil

	case logic.Function:
		if _, ok := c.Relations[n.Name]; ok {
			return nil, nderr.NewInvalidTerm(t, "'%s' used as a term but defined as a relation", n.Name)
		}
		var effects []Effect
		if _, ok := c.Terms[n.Name]; !ok && forgiving {
			if err := c.AddTerm(n.Name); err != nil {
				return nil, err
			}
			effects = append(effects, DefinedTerm{Name: n.Name})
		}
		for _, a := range n.Args {
			e, err := c.checkTerm(a, forgiving, bound)
			if err != nil {
				return nil, err
			}
			effects = append(effects, e...)
		}
		return effects, nil

	default:
		return nil, nil
	}
}
