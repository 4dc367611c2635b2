package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/buffer"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// onMathFont reads one token or a braced group as literal content of a
// single token element such as <mi mathvariant='bold'>.
func (p *parser) onMathFont(str *buffer.Buffer, tagOn, tagOff string) error {
	grouped := p.lex.Peek() == '{'
	content := p.newBuffer()
	depth := 0

	for {
		tok, err := p.next(lexer.SkipAll)
		if err != nil {
			return err
		}

		switch tok.Type {
		case lexer.EOF:
			return p.fail(p.lex.Pos(), types.KindMissingParameter)
		case lexer.LETTER, lexer.DIGIT:
			content.WriteString(tok.Text)
			p.lex.Advance(1)
		case lexer.PRIME:
			content.WriteString(p.readPrimes().Literal)
		case lexer.SYMBOL, lexer.CONTROL_SYMBOL, lexer.RBRACKET:
			if err := p.writeLiteral(content, tok); err != nil {
				return err
			}
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
			if depth < 0 {
				return p.fail(tok.Offset, types.KindMissingParameter)
			}
		case lexer.INLINE_MATH:
			return p.fail(tok.Offset, types.KindMisplacedInlineFormula)
		case lexer.SUPERSCRIPT, lexer.SUBSCRIPT:
			return p.fail(tok.Offset, types.KindNoCommandAllowed)
		case lexer.COLUMN_SEP:
			return p.fail(tok.Offset, types.KindMisplacedColumnSeparator)
		case lexer.ROW_SEP:
			return p.fail(tok.Offset, types.KindMisplacedRowSeparator)
		case lexer.CONTROL_NAME:
			if err := p.writeControlLiteral(content, tok, false); err != nil {
				return err
			}
		}

		if !grouped || depth == 0 {
			break
		}
	}

	str.WriteString(tagOn)
	str.Append(content, true)
	str.WriteString(tagOff)
	return nil
}

// onTokenElement renders \mi, \mn and \mo with an optional [variant]
// argument, e.g. \mi[bf]{x}.
func (p *parser) onTokenElement(str *buffer.Buffer, cmd *tables.Command) error {
	tagOn := cmd.TagOn
	if p.lex.Peek() == '[' {
		p.lex.SkipChar()
		start := p.lex.Pos()
		key, err := p.readAttribute(']')
		if err != nil {
			return err
		}
		variant, ok := tables.MathVariant(key)
		if !ok {
			return p.fail(start, types.KindUnknownAttribute)
		}
		tagOn = fmt.Sprintf("%s mathvariant='%s'>", strings.TrimSuffix(tagOn, ">"), variant)
	}
	return p.onMathFont(str, tagOn, cmd.TagOff)
}

// textOptions configures the text reader.
type textOptions struct {
	allowInline bool // $...$ switches back to math
	toEnd       bool // read to end of input when no brace follows
}

// onText reads a braced text argument. Spaces are kept as no-break
// spaces and $...$ embeds math. Runs of text are wrapped in tagOn/tagOff.
func (p *parser) onText(str *buffer.Buffer, tagOn, tagOff string, opts textOptions) error {
	if !opts.toEnd && p.lex.Peek() != '{' {
		return p.fail(p.lex.Pos(), types.KindMissingLBrace)
	}

	out := p.newBuffer()
	run := p.newBuffer()
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(tagOn)
		out.Append(run, false)
		out.WriteString(tagOff)
		run.Reset()
	}

	depth := 0
loop:
	for {
		tok, err := p.next(lexer.SkipOnce)
		if err != nil {
			return err
		}

		switch tok.Type {
		case lexer.EOF:
			break loop
		case lexer.LETTER, lexer.DIGIT:
			run.WriteString(tok.Text)
			p.lex.Advance(1)
		case lexer.WHITESPACE:
			run.WriteString("&#x00A0;")
		case lexer.PRIME:
			if p.lex.PeekAt(1) == '\'' {
				run.WriteString("&#x201D;")
				p.lex.Advance(2)
			} else {
				run.WriteString("&#x2019;")
				p.lex.Advance(1)
			}
		case lexer.SYMBOL, lexer.CONTROL_SYMBOL, lexer.RBRACKET:
			if err := p.writeLiteral(run, tok); err != nil {
				return err
			}
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
			if depth < 0 {
				return p.fail(tok.Offset, types.KindMissingParameter)
			}
			if depth == 0 {
				break loop
			}
		case lexer.INLINE_MATH:
			if !opts.allowInline {
				return p.fail(tok.Offset, types.KindMisplacedInlineFormula)
			}
			flush()
			p.lex.SkipChar()
			math := p.newBuffer()
			if err := p.runLoop(math, contextInline, nil); err != nil {
				return err
			}
			p.lex.Advance(1)
			wrapRow(math)
			out.Append(math, true)
		case lexer.SUPERSCRIPT, lexer.SUBSCRIPT:
			return p.fail(tok.Offset, types.KindNoCommandAllowed)
		case lexer.COLUMN_SEP:
			return p.fail(tok.Offset, types.KindMisplacedColumnSeparator)
		case lexer.ROW_SEP:
			return p.fail(tok.Offset, types.KindMisplacedRowSeparator)
		case lexer.CONTROL_NAME:
			if err := p.writeControlLiteral(run, tok, true); err != nil {
				return err
			}
		}
	}

	flush()
	wrapRow(out)
	str.Append(out, true)
	return nil
}

// writeLiteral writes the in-text form of a symbol token.
func (p *parser) writeLiteral(b *buffer.Buffer, tok lexer.Token) error {
	if sym, ok := tables.LookupSymbol(tok.Text); ok {
		b.WriteString(sym.Literal)
		return nil
	}
	if r, size := utf8.DecodeRuneInString(tok.Text); !validRune(r, size) {
		return p.fail(tok.Offset, types.KindUnknownCharacter)
	}
	b.WriteString(tok.Text)
	return nil
}

// writeControlLiteral writes the in-text form of an entity or function
// name. Functions are math-only inside text; commands are never allowed.
func (p *parser) writeControlLiteral(b *buffer.Buffer, tok lexer.Token, inText bool) error {
	ctl := p.resolveControl(tok)
	switch ctl.Kind {
	case tables.ControlEntity:
		b.Writef("&#x%x;", ctl.Entity.Code)
	case tables.ControlFunction:
		if inText {
			return p.fail(tok.Offset, types.KindNotMathMode)
		}
		b.WriteString(ctl.Function.Output)
	case tables.ControlCommand:
		return p.fail(tok.Offset, types.KindNoCommandAllowed)
	default:
		return p.fail(tok.Offset, types.KindUndefinedControlSequence)
	}
	return nil
}

// readAttribute reads raw input up to the terminator and moves past it.
// Trailing whitespace is dropped unless it is an escaped space.
func (p *parser) readAttribute(terminator byte) (string, error) {
	input := p.lex.Input()
	start := p.lex.Pos()
	i := strings.IndexByte(input[start:p.lex.End()], terminator)
	if i < 0 {
		p.lex.SetPos(p.lex.End())
		return "", p.fail(p.lex.End(), types.KindMissingEndTag)
	}

	raw := input[start : start+i]
	value := strings.TrimRight(raw, " \t\r\n\f\v")
	if len(value) < len(raw) && strings.HasSuffix(value, `\`) {
		value = raw[:len(value)+1]
	}

	p.lex.SetPos(start + i)
	p.lex.SkipChar()
	return value, nil
}
