package syntax

import (
	"github.com/willowbrook/natded/internal/logic"
	"github.com/willowbrook/natded/internal/nderr"
)

// parser is a small recursive-descent parser over a fixed token
// stream. Relation vs. term is disambiguated purely by usage position:
// the same "Ident[(args)]" shape produces a Relation at formula level
// and a Term (Variable or Function) inside an argument list.
type parser struct {
	toks []token
	pos  int
}

// ParseFormula parses a complete formula from src. The whole input must
// be consumed.
func ParseFormula(src string) (logic.Formula, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, nderr.NewInvalidArguments("unexpected trailing input near '%s'", p.cur().text)
	}
	return f, nil
}

// ParseTerm parses a complete term from src.
func ParseTerm(src string) (logic.Term, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, nderr.NewInvalidArguments("unexpected trailing input near '%s'", p.cur().text)
	}
	return t, nil
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if p.cur().kind != k {
		return token{}, nderr.NewInvalidArguments("expected %s", what)
	}
	return p.advance(), nil
}

// parseFormula := quantified | implies
func (p *parser) parseFormula() (logic.Formula, error) {
	if p.cur().kind == tokIdent && (p.cur().text == "forall" || p.cur().text == "exists") {
		kw := p.advance().text
		ident, err := p.expect(tokIdent, "a variable name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokComma, "','"); err != nil {
			return nil, err
		}
		body, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if kw == "forall" {
			return logic.Forall{Var: ident.text, Body: body}, nil
		}
		return logic.ExistsFormula{Var: ident.text, Body: body}, nil
	}
	return p.parseImplies()
}

// parseImplies := or ("=>" implies)?   -- right associative
func (p *parser) parseImplies() (logic.Formula, error) {
	lhs, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur().kind == tokArrow {
		p.advance()
		rhs, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return logic.Implies{Left: lhs, Right: rhs}, nil
	}
	return lhs, nil
}

// parseOr := and ("\/" and)*   -- left associative
func (p *parser) parseOr() (logic.Formula, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokOr {
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = logic.Or{Left: lhs, Right: rhs}
	}
	return lhs, nil
}

// parseAnd := not ("/\" not)*   -- left associative
func (p *parser) parseAnd() (logic.Formula, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokAnd {
		p.advance()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = logic.And{Left: lhs, Right: rhs}
	}
	return lhs, nil
}

// parseNot := "~" not | atom
func (p *parser) parseNot() (logic.Formula, error) {
	if p.cur().kind == tokTilde {
		p.advance()
		sub, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return logic.Not{Sub: sub}, nil
	}
	return p.parseAtom()
}

// parseAtom := "falsum" | "(" formula ")" | ident ["(" termList ")"]
func (p *parser) parseAtom() (logic.Formula, error) {
	switch p.cur().kind {
	case tokLParen:
		p.advance()
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return f, nil

	case tokIdent:
		name := p.advance().text
		if name == "falsum" {
			return logic.Falsum{}, nil
		}
		args, _, err := p.parseOptionalArgs()
		if err != nil {
			return nil, err
		}
		return logic.Relation{Name: name, Args: args}, nil

	default:
		return nil, nderr.NewInvalidArguments("expected a formula")
	}
}

// parseOptionalArgs parses an optional parenthesized, comma-separated
// argument list. hadParens distinguishes a bare identifier ("x", a
// Variable) from one applied to an explicit empty list ("f()", a
// zero-argument Function/constant) — both yield a nil args slice.
func (p *parser) parseOptionalArgs() (args []logic.Term, hadParens bool, err error) {
	if p.cur().kind != tokLParen {
		return nil, false, nil
	}
	p.advance()
	if p.cur().kind != tokRParen {
		for {
			t, err := p.parseTerm()
			if err != nil {
				return nil, true, err
			}
			args = append(args, t)
			if p.cur().kind != tokComma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, true, err
	}
	return args, true, nil
}

// parseTerm := ident ["(" termList ")"]
func (p *parser) parseTerm() (logic.Term, error) {
	if p.cur().kind != tokIdent {
		return nil, nderr.NewInvalidArguments("expected a term")
	}
	name := p.advance().text
	args, hadParens, err := p.parseOptionalArgs()
	if err != nil {
		return nil, err
	}
	if !hadParens {
		return logic.Variable(name), nil
	}
	return logic.Function{Name: name, Args: args}, nil
}
