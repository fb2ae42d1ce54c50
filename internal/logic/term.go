// Package logic implements the first-order term and formula algebra: the
// recursive syntax trees, structural equality, substitution, free-variable
// computation and fresh-variable generation that every rule in the proof
// engine is built on. Values are immutable after construction; every
// operation here is total.
package logic

import "strings"

// Term is a first-order term: a Variable (an identifier) or a Function
// application (a head identifier plus an ordered argument list). A
// zero-argument Function is a constant. The interface is intentionally
// unexported-method-sealed: Variable and Function are the only variants.
type Term interface {
	termNode()
	String() string
	Equal(other Term) bool
	// Occurs reports whether sub appears anywhere within this term,
	// including the term itself.
	Occurs(sub Term) bool
	// Rewrite returns a copy of this term with every occurrence of old
	// replaced by new. It descends into every subterm, with no
	// capture avoidance.
	Rewrite(old, new Term) Term
	// Domain returns every variable identifier appearing in this term.
	Domain() []string
}

// DefaultTerm is a placeholder term: the single variable x.
var DefaultTerm Term = Variable("x")

// Variable is a bare identifier used as a term.
type Variable string

func (Variable) termNode() {}

func (v Variable) String() string { return string(v) }

func (v Variable) Equal(other Term) bool {
	o, ok := other.(Variable)
	return ok && v == o
}

func (v Variable) Occurs(sub Term) bool { return v.Equal(sub) }

func (v Variable) Rewrite(old, new Term) Term {
	if v.Equal(old) {
		return new
	}
	return v
}

func (v Variable) Domain() []string { return []string{string(v)} }

// Function is a head identifier applied to an ordered list of argument
// terms. An empty Args list denotes a constant.
type Function struct {
	Name string
	Args []Term
}

func (Function) termNode() {}

func (f Function) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (f Function) Equal(other Term) bool {
	o, ok := other.(Function)
	if !ok || f.Name != o.Name || len(f.Args) != len(o.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (f Function) Occurs(sub Term) bool {
	if f.Equal(sub) {
		return true
	}
	for _, a := range f.Args {
		if a.Occurs(sub) {
			return true
		}
	}
	return false
}

func (f Function) Rewrite(old, new Term) Term {
	if f.Equal(old) {
		return new
	}
	args := make([]Term, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Rewrite(old, new)
	}
	return Function{Name: f.Name, Args: args}
}

func (f Function) Domain() []string {
	var dom []string
	for _, a := range f.Args {
		dom = append(dom, a.Domain()...)
	}
	return dom
}
