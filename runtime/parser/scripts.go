package parser

import (
	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/buffer"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// scriptShape is the combination of scripts attached to a base.
type scriptShape int

const (
	shapeSub scriptShape = iota
	shapeSup
	shapeSubSup
)

// placement decides where limits go relative to their operator.
type placement int

const (
	placeDefault placement = iota
	placeCorner            // msub, msup, msubsup
	placeStacked           // munder, mover, munderover
)

var scriptTags = map[placement][3]string{
	placeCorner:  {"msub", "msup", "msubsup"},
	placeStacked: {"munder", "mover", "munderover"},
}

// attach wraps the element starting at start and the scripts in script.
func (p *parser) attach(str *buffer.Buffer, start int, script *buffer.Buffer, shape scriptShape, place placement) {
	tag := scriptTags[place][shape]
	str.InsertAt(start, "<"+tag+">")
	script.WriteString("</" + tag + ">")
	str.Append(script, true)
	if p.telemetry != nil {
		p.telemetry.ScriptCount++
	}
}

// base returns the start of the element scripts attach to.
func (p *parser) base(str *buffer.Buffer) (int, error) {
	span, ok := str.LastElement()
	if !ok {
		return 0, p.fail(p.lex.Pos(), types.KindMissingSubSupBase)
	}
	return span.Start, nil
}

// onSuperscript handles '^' after the base in str.
func (p *parser) onSuperscript(str *buffer.Buffer) error {
	start, err := p.base(str)
	if err != nil {
		return err
	}
	script := p.newBuffer()
	if err := p.readSuperscript(script, false); err != nil {
		return err
	}
	p.attach(str, start, script, shapeSup, placeCorner)
	return nil
}

// onSubscript handles '_' after the base in str, with an optional
// superscript or prime run following the subscript.
func (p *parser) onSubscript(str *buffer.Buffer) error {
	start, err := p.base(str)
	if err != nil {
		return err
	}
	script := p.newBuffer()
	shape, err := p.readSubscript(script)
	if err != nil {
		return err
	}
	p.attach(str, start, script, shape, placeCorner)
	return nil
}

// onPrime renders a prime run as a superscript of the preceding element,
// or as a plain operator when there is none.
func (p *parser) onPrime(str *buffer.Buffer) error {
	span, ok := str.LastElement()
	sym := p.readPrimes()
	if !ok {
		str.WriteString(sym.Element)
		return nil
	}

	script := p.newBuffer()
	script.WriteString(sym.Element)
	if err := p.checkAfterSuperscript(false); err != nil {
		return err
	}
	p.attach(str, span.Start, script, shapeSup, placeCorner)
	return nil
}

// readSuperscript reads the argument of '^' into script. The cursor is
// just past the '^'.
func (p *parser) readSuperscript(script *buffer.Buffer, subsup bool) error {
	if p.lex.Peek() == '\'' {
		return p.fail(p.lex.Pos(), types.KindMissingLBrace)
	}
	if err := p.commandParam(script, contextDefault); err != nil {
		return err
	}
	return p.checkAfterSuperscript(subsup)
}

// readSubscript reads the argument of '_' into script, followed by a
// superscript or prime run if present. The cursor is just past the '_'.
func (p *parser) readSubscript(script *buffer.Buffer) (scriptShape, error) {
	if p.lex.Peek() == '\'' {
		return shapeSub, p.fail(p.lex.Pos(), types.KindMissingLBrace)
	}
	if err := p.commandParam(script, contextDefault); err != nil {
		return shapeSub, err
	}

	switch p.lex.Peek() {
	case '^':
		p.lex.SkipChar()
		if err := p.readSuperscript(script, true); err != nil {
			return shapeSub, err
		}
		return shapeSubSup, nil
	case '\'':
		script.WriteString(p.readPrimes().Element)
		if err := p.checkAfterSuperscript(true); err != nil {
			return shapeSub, err
		}
		return shapeSubSup, nil
	case '_':
		return shapeSub, p.fail(p.lex.Pos(), types.KindDoubleSubscript)
	}
	return shapeSub, nil
}

// checkAfterSuperscript rejects a second superscript, or a subscript
// written after the superscript.
func (p *parser) checkAfterSuperscript(subsup bool) error {
	switch p.lex.Peek() {
	case '^', '\'':
		return p.fail(p.lex.Pos(), types.KindDoubleSuperscript)
	case '_':
		if subsup {
			return p.fail(p.lex.Pos(), types.KindDoubleSubscript)
		}
		return p.fail(p.lex.Pos(), types.KindUseSubscriptFirst)
	}
	return nil
}

// readPrimes consumes a run of up to MaxPrimes primes and the whitespace
// after it.
func (p *parser) readPrimes() tables.Symbol {
	n := 0
	for n < tables.MaxPrimes && p.lex.Peek() == '\'' {
		p.lex.Advance(1)
		n++
	}
	p.lex.SkipSpaces()
	return tables.Prime(n)
}

// onLimits attaches scripts that follow an operator with limits.
// \limits and \nolimits override the default placement; the last one
// given wins.
func (p *parser) onLimits(str *buffer.Buffer, place placement) error {
	override := placeDefault
	for {
		if p.lex.FollowedBy(`\limits`, lexer.SkipAll) {
			override = placeStacked
			continue
		}
		if p.lex.FollowedBy(`\nolimits`, lexer.SkipAll) {
			override = placeCorner
			continue
		}
		break
	}
	if override != placeDefault {
		place = override
	}

	if p.lex.AtEnd() || (!p.lex.ScriptNext() && p.lex.Peek() != '\'') {
		return nil
	}

	start := 0
	if span, ok := str.LastElement(); ok {
		start = span.Start
	}

	script := p.newBuffer()
	var shape scriptShape
	switch p.lex.Peek() {
	case '_':
		p.lex.SkipChar()
		var err error
		if shape, err = p.readSubscript(script); err != nil {
			return err
		}
	case '^':
		p.lex.SkipChar()
		if err := p.readSuperscript(script, false); err != nil {
			return err
		}
		shape = shapeSup
	default:
		script.WriteString(p.readPrimes().Element)
		if err := p.checkAfterSuperscript(false); err != nil {
			return err
		}
		shape = shapeSup
	}

	p.attach(str, start, script, shape, place)
	return nil
}

// limitsPlacement returns the default placement for an operator of type t.
// Movable limits and function limits stack only in display style.
func (p *parser) limitsPlacement(t tables.MathType) placement {
	switch t {
	case tables.MathMovableLimits, tables.MathFuncLimits:
		if p.config.display {
			return placeStacked
		}
		return placeCorner
	default:
		return placeCorner
	}
}
