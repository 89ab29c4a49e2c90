// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package timbuk

import (
	"fmt"
	"io"

	"github.com/sfta-go/sfta/automaton"
)

// Parse reads a Timbuk-format source (sections Ops, Automaton, States,
// an optional Final States, and Transitions) and builds an
// automaton.Automaton on u with the given reading, calling only the
// core's public AddState/SetInitial/AddTransition contract. opts is
// forwarded to automaton.NewTopDown/NewBottomUp (e.g. WithSink). Parse
// returns the automaton's declared name alongside the built automaton.
func Parse(r io.Reader, u *automaton.Universe, reading automaton.Reading, opts ...automaton.Option) (*automaton.Automaton, string, error) {
	lx, err := newLexer(r)
	if err != nil {
		return nil, "", err
	}
	p := &parser{lx: lx}
	if err := p.advance(); err != nil {
		return nil, "", err
	}
	return p.parseFile(u, reading, opts)
}

type parser struct {
	lx  *lexer
	cur token
}

func (p *parser) advance() error {
	t, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("timbuk:%d: %s: %w", p.cur.line, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *parser) expectKind(k tokenKind) (token, error) {
	if p.cur.kind != k {
		return token{}, p.errf("expected %s, got %s", k, p.cur.kind)
	}
	t := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

func (p *parser) expectIdent(word string) error {
	if p.cur.kind != tokIdent || p.cur.text != word {
		return p.errf("expected %q, got %s %q", word, p.cur.kind, p.cur.text)
	}
	return p.advance()
}

func (p *parser) atIdent(word string) bool {
	return p.cur.kind == tokIdent && p.cur.text == word
}

func (p *parser) parseFile(u *automaton.Universe, reading automaton.Reading, opts []automaton.Option) (*automaton.Automaton, string, error) {
	if err := p.parseOps(u); err != nil {
		return nil, "", err
	}
	if err := p.expectIdent("Automaton"); err != nil {
		return nil, "", err
	}
	nameTok, err := p.expectKind(tokIdent)
	if err != nil {
		return nil, "", err
	}
	name := nameTok.text

	a := automaton.NewTopDown(u, opts...)
	if reading == automaton.BottomUp {
		a = automaton.NewBottomUp(u, opts...)
	}

	if err := p.parseStates(a); err != nil {
		return nil, "", err
	}
	if p.atIdent("Final") {
		if err := p.parseFinalStates(a); err != nil {
			return nil, "", err
		}
	}
	if err := p.expectIdent("Transitions"); err != nil {
		return nil, "", err
	}
	if err := p.parseTransitions(a, u); err != nil {
		return nil, "", err
	}
	return a, name, nil
}

// parseOps reads `Ops name:arity name:arity ...` and declares every
// symbol against the Universe's Alphabet up front, so Transitions can
// check an occurrence's arity against this declaration by lookup alone.
func (p *parser) parseOps(u *automaton.Universe) error {
	if err := p.expectIdent("Ops"); err != nil {
		return err
	}
	for p.cur.kind == tokIdent && !p.atIdent("Automaton") {
		nameTok := p.cur
		if err := p.advance(); err != nil {
			return err
		}
		if _, err := p.expectKind(tokColon); err != nil {
			return err
		}
		arityTok, err := p.expectKind(tokNumber)
		if err != nil {
			return err
		}
		arity := parseInt(arityTok.text)
		if _, err := u.Alphabet.Symbol(nameTok.text, arity); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseStates(a *automaton.Automaton) error {
	if err := p.expectIdent("States"); err != nil {
		return err
	}
	for p.cur.kind == tokIdent && !p.atIdent("Final") && !p.atIdent("Transitions") {
		a.AddState(p.cur.text)
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseFinalStates(a *automaton.Automaton) error {
	if err := p.expectIdent("Final"); err != nil {
		return err
	}
	if err := p.expectIdent("States"); err != nil {
		return err
	}
	for p.cur.kind == tokIdent && !p.atIdent("Transitions") {
		q, ok := a.LookupState(p.cur.text)
		if !ok {
			return p.errf("final state %q was not declared in States", p.cur.text)
		}
		if err := a.SetInitial(q); err != nil {
			return fmt.Errorf("%v: %w", err, ErrSyntax)
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseTransitions(a *automaton.Automaton, u *automaton.Universe) error {
	for p.cur.kind == tokIdent {
		symTok := p.cur
		if err := p.advance(); err != nil {
			return err
		}
		var children []string
		if p.cur.kind == tokLParen {
			if err := p.advance(); err != nil {
				return err
			}
			for {
				childTok, err := p.expectKind(tokIdent)
				if err != nil {
					return err
				}
				children = append(children, childTok.text)
				if p.cur.kind == tokComma {
					if err := p.advance(); err != nil {
						return err
					}
					continue
				}
				break
			}
			if _, err := p.expectKind(tokRParen); err != nil {
				return err
			}
		}
		if _, err := p.expectKind(tokArrow); err != nil {
			return err
		}
		targetTok, err := p.expectKind(tokIdent)
		if err != nil {
			return err
		}

		sym, ok := u.Alphabet.Lookup(symTok.text, len(children))
		if !ok {
			return fmt.Errorf("timbuk:%d: symbol %q of arity %d was not declared in Ops: %w", symTok.line, symTok.text, len(children), ErrSyntax)
		}
		childIDs := make([]int, len(children))
		for i, name := range children {
			id, ok := a.LookupState(name)
			if !ok {
				return fmt.Errorf("timbuk:%d: state %q was not declared in States: %w", symTok.line, name, ErrSyntax)
			}
			childIDs[i] = id
		}
		target, ok := a.LookupState(targetTok.text)
		if !ok {
			return fmt.Errorf("timbuk:%d: state %q was not declared in States: %w", targetTok.line, targetTok.text, ErrSyntax)
		}
		if err := a.AddTransition(sym, childIDs, []int{target}); err != nil {
			return fmt.Errorf("%v: %w", err, ErrSyntax)
		}
	}
	if p.cur.kind != tokEOF {
		return p.errf("unexpected %s %q", p.cur.kind, p.cur.text)
	}
	return nil
}

func parseInt(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
