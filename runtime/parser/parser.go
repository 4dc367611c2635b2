package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pgfjr/tex2mml/core/invariant"
	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/buffer"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// Result is the outcome of a conversion. It is returned even when
// conversion fails so telemetry and debug events stay available.
type Result struct {
	// MathML is the converted formula without the enclosing <math>
	// element. Empty on failure.
	MathML      string
	Telemetry   *ParseTelemetry // nil unless telemetry is enabled
	DebugEvents []DebugEvent    // nil unless debug tracing is enabled
}

// context identifies the construct a sub-expression belongs to. The order
// matters: separators are only valid from contextMatrix upward.
type context int

const (
	contextNone context = iota
	contextDefault
	contextBraced
	contextOptional
	contextInline
	contextFenced
	contextMatrix
	contextParams // command arguments outside runLoop
)

func (c context) String() string {
	switch c {
	case contextDefault:
		return "default"
	case contextBraced:
		return "braced"
	case contextOptional:
		return "optional"
	case contextInline:
		return "inline"
	case contextFenced:
		return "fenced"
	case contextMatrix:
		return "matrix"
	case contextParams:
		return "params"
	default:
		return "none"
	}
}

// equationNumber holds a pending \eqno or \leqno label.
type equationNumber struct {
	command *tables.Command
	label   *buffer.Buffer
}

// parser converts one formula. It is not safe for concurrent use; Convert
// creates a fresh parser per call.
type parser struct {
	input   string
	lex     *lexer.Lexer
	config  *ParserConfig
	logger  *slog.Logger
	resolve func(name string) tables.Control

	depth  int
	eqno   *equationNumber
	failed *ConvertError

	telemetry   *ParseTelemetry
	debugEvents []DebugEvent
}

// Convert translates a TeX math formula into MathML presentation markup.
// On failure the error is a *ConvertError.
func Convert(input string, opts ...ParserOpt) (*Result, error) {
	config := newConfig(opts)
	p := newParser(input, config)
	return p.convert()
}

func newParser(input string, config *ParserConfig) *parser {
	p := &parser{
		input:   input,
		config:  config,
		logger:  config.logger,
		resolve: tables.Resolve,
	}
	if config.telemetry >= TelemetryBasic {
		p.telemetry = &ParseTelemetry{}
	}
	if config.debug > DebugOff {
		p.debugEvents = make([]DebugEvent, 0, 32)
	}
	return p
}

func (p *parser) convert() (*Result, error) {
	var startTotal time.Time
	if p.config.telemetry >= TelemetryTiming {
		startTotal = time.Now()
	}

	p.logger.Debug("[PARSER] convert", "length", len(p.input), "display", p.config.display)
	output, err := p.run()

	if p.telemetry != nil {
		if err != nil {
			p.telemetry.ErrorCount = 1
		}
		p.telemetry.OutputBytes = len(output)
		if p.config.telemetry >= TelemetryTiming {
			p.telemetry.TotalTime = time.Since(startTotal)
		}
	}

	result := &Result{
		MathML:      output,
		Telemetry:   p.telemetry,
		DebugEvents: p.debugEvents,
	}
	if err != nil {
		result.MathML = ""
		return result, err
	}
	return result, nil
}

func (p *parser) run() (string, error) {
	var start time.Time
	if p.config.telemetry >= TelemetryTiming {
		start = time.Now()
	}

	end, err := p.precondition()
	if p.config.telemetry >= TelemetryTiming {
		p.telemetry.PreconditionTime = time.Since(start)
		start = time.Now()
	}
	if err != nil {
		return "", err
	}

	p.lex = lexer.New(p.input, lexer.WithEnd(end), lexer.WithLogger(p.logger))
	out := p.newBuffer()
	if err := p.runLoop(out, contextDefault, nil); err != nil {
		return "", err
	}
	wrapRow(out)
	if p.eqno != nil {
		out = p.numberEquation(out)
	}

	if p.config.telemetry >= TelemetryTiming {
		p.telemetry.ConvertTime = time.Since(start)
	}

	if out.Err() != nil {
		return "", p.fail(p.lex.Pos(), types.KindOutOfMemory)
	}
	if out.Len() == 0 {
		return "", p.fail(0, types.KindEmptyOutput)
	}
	invariant.Postcondition(out.Depth() == 0, "output must be balanced, depth %d", out.Depth())
	return out.String(), nil
}

// runLoop converts tokens into out until the sub-expression for ctx ends.
// arr is non-nil only in contextMatrix.
func (p *parser) runLoop(out *buffer.Buffer, ctx context, arr *arrayState) error {
	if err := p.enter(ctx); err != nil {
		return err
	}
	defer p.leave()

	str := p.newBuffer()
	var last lexer.Token
	var stop *tables.Command

loop:
	for {
		tok, err := p.next(lexer.SkipAll)
		if err != nil {
			return err
		}
		last = tok

		switch tok.Type {
		case lexer.EOF:
			break loop

		case lexer.LETTER:
			p.onLetters(str)

		case lexer.DIGIT:
			p.onDigits(str)

		case lexer.PRIME:
			err = p.onPrime(str)

		case lexer.SYMBOL, lexer.CONTROL_SYMBOL:
			err = p.onSymbol(str, tok, true)

		case lexer.INLINE_MATH:
			if ctx != contextInline {
				return p.fail(tok.Offset, types.KindMisplacedInlineFormula)
			}
			break loop

		case lexer.LBRACE:
			err = p.runLoop(str, contextBraced, nil)

		case lexer.RBRACE:
			break loop

		case lexer.RBRACKET:
			if ctx == contextOptional {
				break loop
			}
			err = p.onSymbol(str, tok, true)

		case lexer.SUPERSCRIPT:
			err = p.onSuperscript(str)

		case lexer.SUBSCRIPT:
			err = p.onSubscript(str)

		case lexer.COLUMN_SEP:
			if ctx < contextMatrix {
				return p.fail(tok.Offset, types.KindMisplacedColumnSeparator)
			}
			err = p.onColumnSeparator(str, tok, arr)

		case lexer.ROW_SEP:
			if ctx < contextMatrix {
				return p.fail(tok.Offset, types.KindMisplacedRowSeparator)
			}
			p.onRowSeparator(str, arr)

		case lexer.CONTROL_NAME:
			stop, err = p.onControl(str, tok, ctx, arr)
			if err == nil && stop != nil {
				break loop
			}

		default:
			err = p.fail(tok.Offset, types.KindInternal)
		}

		if err != nil {
			return err
		}
		if str.Err() != nil {
			return p.fail(p.lex.Pos(), types.KindOutOfMemory)
		}
	}

	if err := p.checkEnd(ctx, last, stop); err != nil {
		return err
	}
	out.Append(str, true)
	if out.Err() != nil {
		return p.fail(p.lex.Pos(), types.KindOutOfMemory)
	}
	return nil
}

// checkEnd verifies that the construct for ctx was closed properly.
func (p *parser) checkEnd(ctx context, last lexer.Token, stop *tables.Command) error {
	switch ctx {
	case contextOptional:
		if last.Type != lexer.RBRACKET {
			return p.fail(p.lex.Pos(), types.KindMissingRightBracket)
		}
	case contextInline:
		if last.Type != lexer.INLINE_MATH {
			return p.fail(p.lex.Pos(), types.KindMissingDollar)
		}
	case contextMatrix:
		if stop == nil || stop.ID != tables.CmdEnd {
			return p.fail(p.lex.Pos(), types.KindMissingEnd)
		}
	case contextFenced:
		if stop == nil || stop.ID != tables.CmdRight {
			return p.fail(p.lex.Pos(), types.KindMissingRightFence)
		}
	}
	return nil
}

// onControl dispatches a control name. It returns the command when the
// name closes the current sub-expression (\end, \right).
func (p *parser) onControl(str *buffer.Buffer, tok lexer.Token, ctx context, arr *arrayState) (*tables.Command, error) {
	ctl := p.resolveControl(tok)
	if p.config.debug >= DebugPaths {
		p.recordDebugEvent("control", fmt.Sprintf("%s %s", ctl.Kind, ctl.Name))
	}

	switch ctl.Kind {
	case tables.ControlEntity:
		return nil, p.onEntity(str, ctl.Entity, true)
	case tables.ControlFunction:
		return nil, p.onFunction(str, ctl.Function, true)
	case tables.ControlCommand:
		return p.onCommand(str, tok, ctl.Command, ctx, arr)
	default:
		return nil, p.fail(tok.Offset, types.KindUndefinedControlSequence)
	}
}

// resolveControl looks up a control name. An unknown name followed
// directly by digits is retried with one more digit at a time, and the
// first match wins.
func (p *parser) resolveControl(tok lexer.Token) tables.Control {
	ctl := p.resolve(tok.Text)
	if ctl.Kind != tables.ControlUnknown || !lexer.IsDigit(tok.Next) {
		return ctl
	}

	save := p.lex.Pos()
	name := tok.Text
	for lexer.IsDigit(p.lex.Peek()) {
		name += string(p.lex.Peek())
		p.lex.Advance(1)
		if grown := p.resolve(name); grown.Kind != tables.ControlUnknown {
			p.lex.SkipSpaces()
			return grown
		}
	}
	p.lex.SetPos(save)
	return ctl
}

func (p *parser) onLetters(str *buffer.Buffer) {
	for lexer.IsLetter(p.lex.Peek()) {
		str.Writef("<mi>%c</mi>", p.lex.Peek())
		p.lex.Advance(1)
	}
}

func (p *parser) onDigits(str *buffer.Buffer) {
	start := p.lex.Pos()
	for lexer.IsDigit(p.lex.Peek()) {
		p.lex.Advance(1)
	}
	str.Writef("<mn>%s</mn>", p.input[start:p.lex.Pos()])
}

// onSymbol writes a punctuation symbol or control symbol. Fence symbols
// may not carry scripts when checkScripts is set.
func (p *parser) onSymbol(str *buffer.Buffer, tok lexer.Token, checkScripts bool) error {
	sym, ok := tables.LookupSymbol(tok.Text)
	if !ok {
		r, size := utf8.DecodeRuneInString(tok.Text)
		if !validRune(r, size) || size != len(tok.Text) {
			return p.fail(tok.Offset, types.KindUnknownCharacter)
		}
		switch {
		case unicode.IsLetter(r):
			str.Writef("<mi>%s</mi>", tok.Text)
		case unicode.IsDigit(r):
			str.Writef("<mn>%s</mn>", tok.Text)
		default:
			str.Writef("<mo>%s</mo>", tok.Text)
		}
		return nil
	}

	if checkScripts && sym.Type.IsFence() && p.lex.ScriptNext() {
		return p.fail(p.lex.Pos(), types.KindAmbiguousScript)
	}
	str.WriteString(sym.Element)
	return nil
}

// next reads a token and converts lexical failures.
func (p *parser) next(mode lexer.Mode) (lexer.Token, error) {
	tok, err := p.lex.Next(mode)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return tok, p.fail(lexErr.Offset, lexErr.Kind)
		}
		return tok, p.fail(p.lex.Pos(), types.KindInternal)
	}
	if p.telemetry != nil {
		p.telemetry.TokenCount++
	}
	if p.config.debug >= DebugDetailed {
		p.recordDebugEvent("token", tok.String())
	}
	return tok, nil
}

func (p *parser) enter(ctx context) error {
	p.depth++
	if p.telemetry != nil {
		p.telemetry.GroupCount++
		p.telemetry.MaxDepth = max(p.telemetry.MaxDepth, p.depth)
	}
	if p.config.debug >= DebugPaths {
		p.recordDebugEvent("enter_group", ctx.String())
	}
	if p.depth > p.config.maxDepth {
		return p.fail(p.lex.Pos(), types.KindNestingTooDeep)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
	invariant.Invariant(p.depth >= 0, "group depth underflow")
}

// numberEquation wraps out in a labeled table row.
func (p *parser) numberEquation(out *buffer.Buffer) *buffer.Buffer {
	table := p.newBuffer()
	table.WriteString(p.eqno.command.TagOn)
	table.Append(p.eqno.label, true)
	table.WriteString(p.eqno.command.TagOff)
	table.Append(out, true)
	table.WriteString("</mtd></mlabeledtr></mtable>")
	return table
}

func (p *parser) newBuffer() *buffer.Buffer {
	return buffer.New(p.config.maxOutput)
}

// fail records a conversion error. Only the first error of a conversion
// is reported.
func (p *parser) fail(offset int, kind types.ErrorKind) error {
	if p.failed != nil {
		return p.failed
	}
	p.failed = newConvertError(p.input, offset, kind)
	p.logger.Debug("[PARSER] error", "offset", offset, "kind", kind.String())
	if p.config.debug >= DebugPaths {
		p.recordDebugEvent("error", kind.String())
	}
	return p.failed
}

// recordDebugEvent records debug events when debug tracing is enabled
func (p *parser) recordDebugEvent(event, context string) {
	if p.config.debug == DebugOff || p.debugEvents == nil {
		return
	}

	offset := 0
	if p.lex != nil {
		offset = p.lex.Pos()
	}
	p.debugEvents = append(p.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Offset:    offset,
		Context:   context,
	})
}

// wrapRow groups the elements of b in an mrow when there is more than one.
func wrapRow(b *buffer.Buffer) {
	if b.TopLevelCount() > 1 {
		b.InsertAt(0, "<mrow>")
		b.WriteString("</mrow>")
	}
}

// validRune reports whether a decoded non-ASCII rune may be copied into
// the output. Invalid encodings decode as RuneError with size 1.
func validRune(r rune, size int) bool {
	return r >= utf8.RuneSelf && !(r == utf8.RuneError && size <= 1)
}
