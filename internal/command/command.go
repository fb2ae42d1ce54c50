// Package command is the command-name↔rule dispatch glue: it maps a
// single trimmed command-line string to the engine.Command it denotes,
// validating argument shape against each command's fixed schema. It has
// no interesting engineering of its own — it is a lookup table plus a
// handful of formula/term parses.
package command

import (
	"strings"

	"github.com/willowbrook/natded/internal/engine"
	"github.com/willowbrook/natded/internal/nderr"
	"github.com/willowbrook/natded/internal/rule"
	"github.com/willowbrook/natded/internal/syntax"
)

// arity tells Parse how to read the remainder of a command line after
// its name.
type arity int

const (
	arityNone arity = iota
	arityFormula
	arityTerm
	arityIdent
)

type schema struct {
	name  string
	arity arity
	build func(argsText string) (engine.Command, error)
}

func ruleSchema(name string, arity arity, build func(argsText string) (rule.Rule, error)) schema {
	return schema{name: name, arity: arity, build: func(argsText string) (engine.Command, error) {
		r, err := build(argsText)
		if err != nil {
			return nil, err
		}
		return engine.RuleCommand{Rule: r}, nil
	}}
}

var schemas = map[string]schema{
	"axiom": ruleSchema("axiom", arityNone, func(string) (rule.Rule, error) { return rule.Axiom{}, nil }),
	"intro": ruleSchema("intro", arityNone, func(string) (rule.Rule, error) { return rule.Intro{}, nil }),
	"intros": ruleSchema("intros", arityNone, func(string) (rule.Rule, error) { return rule.Intros{}, nil }),
	"trans": ruleSchema("trans", arityFormula, func(a string) (rule.Rule, error) {
		f, err := syntax.ParseFormula(a)
		if err != nil {
			return nil, err
		}
		return rule.Trans{Formula: f}, nil
	}),
	"split": ruleSchema("split", arityNone, func(string) (rule.Rule, error) { return rule.SplitAnd{}, nil }),
	"and_left": ruleSchema("and_left", arityFormula, func(a string) (rule.Rule, error) {
		f, err := syntax.ParseFormula(a)
		if err != nil {
			return nil, err
		}
		return rule.And{Side: rule.Left, Formula: f}, nil
	}),
	"and_right": ruleSchema("and_right", arityFormula, func(a string) (rule.Rule, error) {
		f, err := syntax.ParseFormula(a)
		if err != nil {
			return nil, err
		}
		return rule.And{Side: rule.Right, Formula: f}, nil
	}),
	"keep_left":  ruleSchema("keep_left", arityNone, func(string) (rule.Rule, error) { return rule.Keep{Side: rule.Left}, nil }),
	"keep_right": ruleSchema("keep_right", arityNone, func(string) (rule.Rule, error) { return rule.Keep{Side: rule.Right}, nil }),
	"from_or": ruleSchema("from_or", arityFormula, func(a string) (rule.Rule, error) {
		f, err := syntax.ParseFormula(a)
		if err != nil {
			return nil, err
		}
		return rule.FromOr{Formula: f}, nil
	}),
	"gen": ruleSchema("gen", arityTerm, func(a string) (rule.Rule, error) {
		t, err := syntax.ParseTerm(a)
		if err != nil {
			return nil, err
		}
		return rule.Generalize{Term: t}, nil
	}),
	"fix_as": ruleSchema("fix_as", arityTerm, func(a string) (rule.Rule, error) {
		t, err := syntax.ParseTerm(a)
		if err != nil {
			return nil, err
		}
		return rule.FixAs{Term: t}, nil
	}),
	"consider": ruleSchema("consider", arityFormula, func(a string) (rule.Rule, error) {
		f, err := syntax.ParseFormula(a)
		if err != nil {
			return nil, err
		}
		return rule.Consider{Formula: f}, nil
	}),
	"rename_as": ruleSchema("rename_as", arityIdent, func(a string) (rule.Rule, error) {
		return rule.RenameAs{Name: a}, nil
	}),
	"from_bottom": ruleSchema("from_bottom", arityNone, func(string) (rule.Rule, error) { return rule.FromBottom{}, nil }),
	"exfalso": ruleSchema("exfalso", arityFormula, func(a string) (rule.Rule, error) {
		f, err := syntax.ParseFormula(a)
		if err != nil {
			return nil, err
		}
		return rule.ExFalso{Formula: f}, nil
	}),
}

// Parse turns one trimmed command-line string into an engine.Command.
func Parse(line string) (engine.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nderr.NewCommandError("empty command")
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "Qed":
		return requireNoArgs(name, rest, engine.QedCommand{})
	case "Admit":
		return requireNoArgs(name, rest, engine.AdmitCommand{})
	case "Use":
		if rest == "" {
			return nil, nderr.NewArgumentsRequired("Use requires a theorem name")
		}
		return engine.UseCommand{Name: rest}, nil
	case "Thm":
		return parseThm(rest)
	}

	s, ok := schemas[name]
	if !ok {
		return nil, nderr.NewUnknownCommand(name)
	}
	switch s.arity {
	case arityNone:
		if rest != "" {
			return nil, nderr.NewTooMuchArguments(name)
		}
	default:
		if rest == "" {
			return nil, nderr.NewArgumentsRequired("%s requires an argument", name)
		}
	}
	return s.build(rest)
}

func requireNoArgs(name, rest string, cmd engine.Command) (engine.Command, error) {
	if rest != "" {
		return nil, nderr.NewTooMuchArguments(name)
	}
	return cmd, nil
}

// parseThm parses "<ident> :: <formula>" (the "Thm " prefix already
// stripped by Parse).
func parseThm(rest string) (engine.Command, error) {
	ident, formulaText, found := strings.Cut(rest, "::")
	if !found {
		return nil, nderr.NewInvalidArguments("expected 'Thm <ident> :: <formula>'")
	}
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return nil, nderr.NewArgumentsRequired("Thm requires a theorem name")
	}
	f, err := syntax.ParseFormula(strings.TrimSpace(formulaText))
	if err != nil {
		return nil, err
	}
	return engine.TheoremCommand{Name: ident, Goal: f}, nil
}
