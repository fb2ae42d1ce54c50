package logic

import "strings"

// variableOrder is the fixed search order for FreshVariable: x to z, then
// w down to a. This is a contract, not an implementation detail — it
// must be reproduced verbatim so that pretty-printed proofs are
// reproducible across re-implementations.
var variableOrder = []byte("xyzwvutsrqponmlkjihgfedcba")

// Formula is a first-order formula. The variant set (Falsum, Relation,
// Not, And, Or, Implies, Forall, Exists) is closed by the unexported
// formulaNode/domainChecked methods: only types in this package
// implement Formula.
type Formula interface {
	formulaNode()
	String() string
	Equal(other Formula) bool
	// Precedence drives parenthesization when pretty-printing: Falsum
	// and Relation are 5, Not is 4, And/Or are 3, Implies is 2,
	// Forall/Exists are 1.
	Precedence() int
	// Exists reports whether t occurs anywhere under a relation in
	// this formula.
	Exists(t Term) bool
	// Rewrite substitutes every occurrence of old with new, including
	// under quantifier bodies, with no alpha-renaming. Capture
	// avoidance is the caller's responsibility (enforced at the rule
	// level, not here).
	Rewrite(old, new Term) Formula
	// Domain returns the free variables of this formula.
	Domain() []string

	domainChecked(bound []string) []string
}

// FreshVariable returns the first variable name, in the order x, y, z,
// w, ..., a, then with an appended prime mark repeating, that does not
// occur in f's domain.
func FreshVariable(f Formula) string {
	existing := f.Domain()
	contains := func(name string) bool {
		for _, v := range existing {
			if v == name {
				return true
			}
		}
		return false
	}

	for prime := 0; ; prime++ {
		suffix := strings.Repeat("'", prime)
		for _, c := range variableOrder {
			name := string(c) + suffix
			if !contains(name) {
				return name
			}
		}
	}
}

// Falsum is the bottom/absurdity formula.
type Falsum struct{}

func (Falsum) formulaNode()                       {}
func (Falsum) String() string                     { return "falsum" }
func (Falsum) Precedence() int                    { return 5 }
func (Falsum) Exists(Term) bool                   { return false }
func (Falsum) Rewrite(Term, Term) Formula         { return Falsum{} }
func (Falsum) Domain() []string                   { return nil }
func (Falsum) domainChecked(bound []string) []string { return nil }
func (f Falsum) Equal(other Formula) bool {
	_, ok := other.(Falsum)
	return ok
}

// Relation is a named predicate applied to an ordered argument list.
type Relation struct {
	Name string
	Args []Term
}

func (Relation) formulaNode()    {}
func (Relation) Precedence() int { return 5 }

func (r Relation) String() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		parts[i] = a.String()
	}
	return r.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (r Relation) Equal(other Formula) bool {
	o, ok := other.(Relation)
	if !ok || r.Name != o.Name || len(r.Args) != len(o.Args) {
		return false
	}
	for i := range r.Args {
		if !r.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (r Relation) Exists(t Term) bool {
	for _, a := range r.Args {
		if a.Occurs(t) {
			return true
		}
	}
	return false
}

func (r Relation) Rewrite(old, new Term) Formula {
	args := make([]Term, len(r.Args))
	for i, a := range r.Args {
		args[i] = a.Rewrite(old, new)
	}
	return Relation{Name: r.Name, Args: args}
}

func (r Relation) Domain() []string { return r.domainChecked(nil) }

func (r Relation) domainChecked(bound []string) []string {
	var dom []string
	for _, a := range r.Args {
		for _, v := range a.Domain() {
			if !containsStr(bound, v) {
				dom = append(dom, v)
			}
		}
	}
	return dom
}

// Not is logical negation.
type Not struct{ Sub Formula }

func (Not) formulaNode()    {}
func (Not) Precedence() int { return 4 }

// String special-cases a Relation operand (printed unparenthesized,
// since a bare relation never needs it); every other operand, including
// a nested Not, is wrapped in parentheses.
func (n Not) String() string {
	if r, ok := n.Sub.(Relation); ok {
		return "~" + r.String()
	}
	return "~(" + n.Sub.String() + ")"
}

func (n Not) Equal(other Formula) bool {
	o, ok := other.(Not)
	return ok && n.Sub.Equal(o.Sub)
}

func (n Not) Exists(t Term) bool           { return n.Sub.Exists(t) }
func (n Not) Rewrite(old, new Term) Formula { return Not{Sub: n.Sub.Rewrite(old, new)} }
func (n Not) Domain() []string             { return n.domainChecked(nil) }
func (n Not) domainChecked(bound []string) []string { return n.Sub.domainChecked(bound) }

// And is left-associative conjunction.
type And struct{ Left, Right Formula }

func (And) formulaNode()    {}
func (And) Precedence() int { return 3 }
func (a And) String() string { return binaryLeft(a, a.Left, a.Right, "/\\") }
func (a And) Equal(other Formula) bool {
	o, ok := other.(And)
	return ok && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}
func (a And) Exists(t Term) bool { return a.Left.Exists(t) || a.Right.Exists(t) }
func (a And) Rewrite(old, new Term) Formula {
	return And{Left: a.Left.Rewrite(old, new), Right: a.Right.Rewrite(old, new)}
}
func (a And) Domain() []string { return a.domainChecked(nil) }
func (a And) domainChecked(bound []string) []string {
	return mergeDomains(a.Left.domainChecked(bound), a.Right.domainChecked(bound))
}

// Or is left-associative disjunction.
type Or struct{ Left, Right Formula }

func (Or) formulaNode()    {}
func (Or) Precedence() int { return 3 }
func (o Or) String() string { return binaryLeft(o, o.Left, o.Right, "\\/") }
func (o Or) Equal(other Formula) bool {
	v, ok := other.(Or)
	return ok && o.Left.Equal(v.Left) && o.Right.Equal(v.Right)
}
func (o Or) Exists(t Term) bool { return o.Left.Exists(t) || o.Right.Exists(t) }
func (o Or) Rewrite(old, new Term) Formula {
	return Or{Left: o.Left.Rewrite(old, new), Right: o.Right.Rewrite(old, new)}
}
func (o Or) Domain() []string { return o.domainChecked(nil) }
func (o Or) domainChecked(bound []string) []string {
	return mergeDomains(o.Left.domainChecked(bound), o.Right.domainChecked(bound))
}

// Implies is right-associative implication.
type Implies struct{ Left, Right Formula }

func (Implies) formulaNode()    {}
func (Implies) Precedence() int { return 2 }
func (i Implies) String() string { return binaryRight(i, i.Left, i.Right, "=>") }
func (i Implies) Equal(other Formula) bool {
	o, ok := other.(Implies)
	return ok && i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}
func (i Implies) Exists(t Term) bool { return i.Left.Exists(t) || i.Right.Exists(t) }
func (i Implies) Rewrite(old, new Term) Formula {
	return Implies{Left: i.Left.Rewrite(old, new), Right: i.Right.Rewrite(old, new)}
}
func (i Implies) Domain() []string { return i.domainChecked(nil) }
func (i Implies) domainChecked(bound []string) []string {
	return mergeDomains(i.Left.domainChecked(bound), i.Right.domainChecked(bound))
}

// Forall is universal quantification over a single variable.
type Forall struct {
	Var  string
	Body Formula
}

func (Forall) formulaNode()    {}
func (Forall) Precedence() int { return 1 }
func (q Forall) String() string { return "forall " + q.Var + ", " + q.Body.String() }
func (q Forall) Equal(other Formula) bool {
	o, ok := other.(Forall)
	return ok && q.Var == o.Var && q.Body.Equal(o.Body)
}
func (q Forall) Exists(t Term) bool            { return q.Body.Exists(t) }
func (q Forall) Rewrite(old, new Term) Formula { return Forall{Var: q.Var, Body: q.Body.Rewrite(old, new)} }
func (q Forall) Domain() []string              { return q.domainChecked(nil) }
func (q Forall) domainChecked(bound []string) []string {
	newBound := bound
	if !containsStr(newBound, q.Var) {
		newBound = append(append([]string(nil), bound...), q.Var)
	}
	return q.Body.domainChecked(newBound)
}

// Exists is existential quantification over a single variable. Named
// ExistsFormula to avoid colliding with the Exists(t Term) method shared
// by every Formula variant.
type ExistsFormula struct {
	Var  string
	Body Formula
}

func (ExistsFormula) formulaNode()    {}
func (ExistsFormula) Precedence() int { return 1 }
func (q ExistsFormula) String() string { return "exists " + q.Var + ", " + q.Body.String() }
func (q ExistsFormula) Equal(other Formula) bool {
	o, ok := other.(ExistsFormula)
	return ok && q.Var == o.Var && q.Body.Equal(o.Body)
}
func (q ExistsFormula) Exists(t Term) bool { return q.Body.Exists(t) }
func (q ExistsFormula) Rewrite(old, new Term) Formula {
	return ExistsFormula{Var: q.Var, Body: q.Body.Rewrite(old, new)}
}
func (q ExistsFormula) Domain() []string { return q.domainChecked(nil) }
func (q ExistsFormula) domainChecked(bound []string) []string {
	newBound := bound
	if !containsStr(newBound, q.Var) {
		newBound = append(append([]string(nil), bound...), q.Var)
	}
	return q.Body.domainChecked(newBound)
}

func binaryLeft(self Formula, lhs, rhs Formula, op string) string {
	lhsStr := lhs.String()
	if lhs.Precedence() < self.Precedence() {
		lhsStr = "(" + lhsStr + ")"
	}
	rhsStr := rhs.String()
	if rhs.Precedence() <= self.Precedence() {
		rhsStr = "(" + rhsStr + ")"
	}
	return lhsStr + " " + op + " " + rhsStr
}

func binaryRight(self Formula, lhs, rhs Formula, op string) string {
	lhsStr := lhs.String()
	if lhs.Precedence() <= self.Precedence() {
		lhsStr = "(" + lhsStr + ")"
	}
	rhsStr := rhs.String()
	if rhs.Precedence() < self.Precedence() {
		rhsStr = "(" + rhsStr + ")"
	}
	return lhsStr + " " + op + " " + rhsStr
}

func containsStr(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// mergeDomains concatenates, sorts and dedups two domain lists, matching
// the behavior of the two-children connective cases.
func mergeDomains(a, b []string) []string {
	all := append(append([]string(nil), a...), b...)
	return sortDedup(all)
}

func sortDedup(vs []string) []string {
	if len(vs) == 0 {
		return vs
	}
	// insertion sort is adequate: domains are tiny in practice.
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1] > vs[j]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
	out := vs[:1]
	for _, v := range vs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
