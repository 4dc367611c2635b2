package parser

import (
	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/buffer"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// onCommand renders cmd into str. It returns cmd when the command closes
// the current sub-expression.
func (p *parser) onCommand(str *buffer.Buffer, tok lexer.Token, cmd *tables.Command, ctx context, arr *arrayState) (*tables.Command, error) {
	switch cmd.Param {
	case tables.ParamOne:
		return nil, p.wrapParams(str, cmd, 1)
	case tables.ParamTwo:
		return nil, p.wrapParams(str, cmd, 2)
	case tables.ParamPlain:
		return nil, p.onPlainCommand(str, cmd)
	}

	switch cmd.ID {
	case tables.CmdSqrt:
		return nil, p.onSqrt(str, cmd)
	case tables.CmdBegin:
		return nil, p.onBegin(str)
	case tables.CmdEnd:
		return cmd, p.onEnd(ctx, arr)
	case tables.CmdLeft:
		return nil, p.onFence(str, cmd)
	case tables.CmdRight:
		if ctx != contextFenced {
			return nil, p.fail(p.lex.Pos(), types.KindMissingLeftFence)
		}
		return cmd, nil
	case tables.CmdStackrel:
		return nil, p.onStackrel(str, cmd)
	case tables.CmdCfrac:
		return nil, p.onCfrac(str, cmd)
	case tables.CmdExtArrow:
		return nil, p.onArrow(str, cmd)
	case tables.CmdUnderOverBrace:
		return nil, p.onBrace(str, cmd)
	case tables.CmdLsub, tables.CmdLsup, tables.CmdLsubsup:
		return nil, p.onPrescripts(str, cmd)
	case tables.CmdText:
		return nil, p.onText(str, cmd.TagOn, cmd.TagOff, textOptions{allowInline: true})
	case tables.CmdMathString:
		return nil, p.onText(str, cmd.TagOn, cmd.TagOff, textOptions{})
	case tables.CmdEqno, tables.CmdLeqno:
		return nil, p.onEquationNumber(cmd, ctx)
	case tables.CmdHfill:
		if p.lex.ScriptNext() {
			return nil, p.fail(p.lex.Pos(), prefixKind(p.lex.Peek()))
		}
		return nil, nil
	case tables.CmdStrut:
		str.WriteString(cmd.TagOn)
		return nil, nil
	case tables.CmdLimits, tables.CmdNolimits:
		return nil, p.fail(tok.Offset, types.KindMisplacedLimits)
	}
	return nil, p.fail(tok.Offset, types.KindInternal)
}

// onPlainCommand renders commands whose argument is literal font content.
func (p *parser) onPlainCommand(str *buffer.Buffer, cmd *tables.Command) error {
	switch cmd.ID {
	case tables.CmdMi, tables.CmdMn, tables.CmdMo:
		return p.onTokenElement(str, cmd)
	case tables.CmdMathOp:
		op := p.newBuffer()
		if err := p.onMathFont(op, cmd.TagOn, cmd.TagOff); err != nil {
			return err
		}
		if err := p.onLimits(op, placeCorner); err != nil {
			return err
		}
		str.Append(op, true)
		return nil
	default:
		return p.onMathFont(str, cmd.TagOn, cmd.TagOff)
	}
}

// wrapParams writes TagOn, n arguments and TagOff.
func (p *parser) wrapParams(str *buffer.Buffer, cmd *tables.Command, n int) error {
	// \frac arguments nest without passing through runLoop
	if err := p.enter(contextParams); err != nil {
		return err
	}
	defer p.leave()

	group := p.newBuffer()
	group.WriteString(cmd.TagOn)
	for i := 0; i < n; i++ {
		if err := p.commandParam(group, contextDefault); err != nil {
			return err
		}
	}
	group.WriteString(cmd.TagOff)
	str.Append(group, true)
	return nil
}

// commandParam reads one command argument into str: a single token or a
// braced group. An empty group yields <mrow/>. Only \frac is accepted as
// a command argument.
func (p *parser) commandParam(str *buffer.Buffer, ctx context) error {
	tok, err := p.next(lexer.SkipAll)
	if err != nil {
		return err
	}

	switch tok.Type {
	case lexer.LETTER:
		str.Writef("<mi>%s</mi>", tok.Text)
		p.lex.SkipChar()
	case lexer.DIGIT:
		str.Writef("<mn>%s</mn>", tok.Text)
		p.lex.SkipChar()
	case lexer.PRIME:
		str.WriteString(tables.Prime(1).Element)
		p.lex.SkipChar()
	case lexer.SYMBOL, lexer.CONTROL_SYMBOL, lexer.RBRACKET:
		return p.onSymbol(str, tok, false)
	case lexer.LBRACE:
		if ctx == contextDefault {
			ctx = contextBraced
		}
		group := p.newBuffer()
		if err := p.runLoop(group, ctx, nil); err != nil {
			return err
		}
		if group.Len() == 0 {
			// Parameters are element children and may not vanish
			str.WriteString("<mrow/>")
			return nil
		}
		wrapRow(group)
		str.Append(group, true)
	case lexer.CONTROL_NAME:
		ctl := p.resolveControl(tok)
		switch ctl.Kind {
		case tables.ControlEntity:
			return p.onEntity(str, ctl.Entity, false)
		case tables.ControlFunction:
			return p.onFunction(str, ctl.Function, false)
		case tables.ControlCommand:
			if ctl.Command.ID != tables.CmdFrac {
				return p.fail(tok.Offset, types.KindNoCommandAllowed)
			}
			return p.wrapParams(str, ctl.Command, 2)
		default:
			return p.fail(tok.Offset, types.KindUndefinedControlSequence)
		}
	default:
		return p.fail(p.lex.Pos(), types.KindMissingParameter)
	}
	return nil
}

// onEntity writes a single-character control name. With limits set, an
// operator entity takes the scripts that follow it as limits and fence
// entities may not carry scripts.
func (p *parser) onEntity(str *buffer.Buffer, e *tables.Entity, limits bool) error {
	switch e.Type {
	case tables.MathIdent:
		str.Writef("<mi>&#x%x;</mi>", e.Code)
	case tables.MathDigit:
		str.Writef("<mn>&#x%x;</mn>", e.Code)
	case tables.MathText:
		str.Writef("<mtext>&#x%x;</mtext>", e.Code)
	case tables.MathOrd, tables.MathBin, tables.MathUnary, tables.MathBinUnary,
		tables.MathRel, tables.MathPunct:
		str.Writef("<mo>&#x%x;</mo>", e.Code)
	case tables.MathLimits, tables.MathMovableLimits:
		op := p.newBuffer()
		op.Writef("<mo>&#x%x;</mo>", e.Code)
		if limits {
			if err := p.onLimits(op, p.limitsPlacement(e.Type)); err != nil {
				return err
			}
		}
		str.Append(op, true)
	case tables.MathLeftFence, tables.MathRightFence, tables.MathFence:
		if limits && p.lex.ScriptNext() {
			return p.fail(p.lex.Pos(), types.KindAmbiguousScript)
		}
		str.Writef("<mo mathsize='1'>&#x%x;</mo>", e.Code)
	default:
		return p.fail(p.lex.Pos(), types.KindUnhandledMathType)
	}
	return nil
}

// onFunction writes a named function such as \sin or \lim.
func (p *parser) onFunction(str *buffer.Buffer, f *tables.Function, limits bool) error {
	fn := p.newBuffer()
	fn.Writef("<mi>%s</mi>", f.Output)
	if limits && f.Type == tables.MathFuncLimits {
		if err := p.onLimits(fn, p.limitsPlacement(f.Type)); err != nil {
			return err
		}
	}
	str.Append(fn, true)
	return nil
}

// onSqrt renders \sqrt{x} and \sqrt[n]{x}. An empty index falls back to
// a square root.
func (p *parser) onSqrt(str *buffer.Buffer, cmd *tables.Command) error {
	if p.lex.Peek() == '\'' {
		return p.fail(p.lex.Pos(), types.KindMissingLBrace)
	}

	var index *buffer.Buffer
	if p.lex.Peek() == '[' {
		p.lex.SkipChar()
		index = p.newBuffer()
		if err := p.runLoop(index, contextOptional, nil); err != nil {
			return err
		}
	}

	root := p.newBuffer()
	if index != nil && index.Len() > 0 {
		root.WriteString("<mroot>")
		if err := p.commandParam(root, contextDefault); err != nil {
			return err
		}
		wrapRow(index)
		root.Append(index, true)
		root.WriteString("</mroot>")
	} else {
		root.WriteString(cmd.TagOn)
		if err := p.commandParam(root, contextDefault); err != nil {
			return err
		}
		root.WriteString(cmd.TagOff)
	}
	str.Append(root, true)
	return nil
}

// onStackrel renders \stackrel{over}{base}.
func (p *parser) onStackrel(str *buffer.Buffer, cmd *tables.Command) error {
	over := p.newBuffer()
	if err := p.commandParam(over, contextDefault); err != nil {
		return err
	}
	group := p.newBuffer()
	group.WriteString(cmd.TagOn)
	if err := p.commandParam(group, contextDefault); err != nil {
		return err
	}
	group.Append(over, true)
	group.WriteString(cmd.TagOff)
	str.Append(group, true)
	return nil
}

const displayStyle = "<mstyle displaystyle='true' scriptlevel='0'>"

// onCfrac renders a continued fraction with both parts in display style.
func (p *parser) onCfrac(str *buffer.Buffer, cmd *tables.Command) error {
	group := p.newBuffer()
	group.WriteString(cmd.TagOn + displayStyle)
	if err := p.commandParam(group, contextDefault); err != nil {
		return err
	}
	group.WriteString("</mstyle>" + displayStyle)
	if err := p.commandParam(group, contextDefault); err != nil {
		return err
	}
	group.WriteString(cmd.TagOff)
	str.Append(group, true)
	return nil
}

// onArrow renders an extensible arrow with text over it and, when an
// optional argument is given, under it.
func (p *parser) onArrow(str *buffer.Buffer, cmd *tables.Command) error {
	var under *buffer.Buffer
	if p.lex.Peek() == '[' {
		p.lex.SkipChar()
		under = p.newBuffer()
		if err := p.runLoop(under, contextOptional, nil); err != nil {
			return err
		}
	}

	group := p.newBuffer()
	if under != nil && under.Len() > 0 {
		wrapRow(under)
		group.WriteString("<munderover>" + cmd.TagOn)
		group.Append(under, true)
		if err := p.commandParam(group, contextDefault); err != nil {
			return err
		}
		group.WriteString("</munderover>")
	} else {
		group.WriteString("<mover>" + cmd.TagOn)
		if err := p.commandParam(group, contextDefault); err != nil {
			return err
		}
		group.WriteString(cmd.TagOff)
	}
	str.Append(group, true)
	return nil
}

// onBrace renders \underbrace and \overbrace, which take stacked limits.
func (p *parser) onBrace(str *buffer.Buffer, cmd *tables.Command) error {
	group := p.newBuffer()
	group.WriteString(cmd.TagOn)
	if err := p.commandParam(group, contextDefault); err != nil {
		return err
	}
	group.WriteString(cmd.TagOff)
	if err := p.onLimits(group, placeStacked); err != nil {
		return err
	}
	str.Append(group, true)
	return nil
}

// onPrescripts renders \lsub{base}{sub}, \lsup{base}{sup} and
// \lsubsup{base}{sub}{sup}.
func (p *parser) onPrescripts(str *buffer.Buffer, cmd *tables.Command) error {
	group := p.newBuffer()
	group.WriteString(cmd.TagOn)
	if err := p.commandParam(group, contextDefault); err != nil {
		return err
	}
	group.WriteString("<mprescripts/>")
	if cmd.ID == tables.CmdLsup {
		group.WriteString("<none/>")
	}
	if err := p.commandParam(group, contextDefault); err != nil {
		return err
	}
	switch cmd.ID {
	case tables.CmdLsub:
		group.WriteString("<none/>")
	case tables.CmdLsubsup:
		if err := p.commandParam(group, contextDefault); err != nil {
			return err
		}
	}
	group.WriteString(cmd.TagOff)
	str.Append(group, true)
	return nil
}

// onEquationNumber reads the label of \eqno or \leqno. The label runs to
// the end of the formula unless it is braced.
func (p *parser) onEquationNumber(cmd *tables.Command, ctx context) error {
	if ctx != contextDefault {
		return p.fail(p.lex.Pos(), types.KindMisplacedEqno)
	}
	if p.eqno != nil {
		return p.fail(p.lex.Pos(), types.KindDuplicateEqno)
	}

	label := p.newBuffer()
	if err := p.onText(label, "<mtext>", "</mtext>", textOptions{toEnd: true}); err != nil {
		return err
	}
	p.eqno = &equationNumber{command: cmd, label: label}
	return nil
}

func prefixKind(script byte) types.ErrorKind {
	if script == '^' {
		return types.KindPrefixSuperscript
	}
	return types.KindPrefixSubscript
}
