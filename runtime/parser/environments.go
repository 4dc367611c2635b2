package parser

import (
	"strings"

	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/buffer"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// arrayState tracks the open environment and its column count.
type arrayState struct {
	env        *tables.Environment
	columns    int
	maxColumns int // zero means unlimited
}

// onBegin renders \begin{name} ... \end{name}.
func (p *parser) onBegin(str *buffer.Buffer) error {
	env, err := p.environmentName()
	if err != nil {
		return err
	}

	arr := &arrayState{env: env, columns: 1, maxColumns: env.MaxColumns}
	tagOn := env.TagOn
	if env.ColumnSpec {
		if tagOn, arr.maxColumns, err = p.columnAlignment(tagOn); err != nil {
			return err
		}
	}

	if p.config.debug >= DebugPaths {
		p.recordDebugEvent("begin", env.Name)
	}

	body := p.newBuffer()
	body.WriteString(tagOn)
	if err := p.runLoop(body, contextMatrix, arr); err != nil {
		return err
	}
	body.WriteString(env.TagOff)
	str.Append(body, true)
	return nil
}

// onEnd closes the innermost environment.
func (p *parser) onEnd(ctx context, arr *arrayState) error {
	pos := p.lex.Pos()
	if ctx != contextMatrix {
		return p.fail(pos, types.KindMissingBegin)
	}
	env, err := p.environmentName()
	if err != nil {
		return err
	}
	if env.ID != arr.env.ID {
		return p.fail(pos, types.KindMismatchedEnvironment)
	}
	return nil
}

// environmentName reads {name} after \begin or \end.
func (p *parser) environmentName() (*tables.Environment, error) {
	if p.lex.Peek() != '{' {
		return nil, p.fail(p.lex.Pos(), types.KindMissingLBrace)
	}
	p.lex.SkipChar()
	start := p.lex.Pos()
	name, err := p.readAttribute('}')
	if err != nil {
		return nil, err
	}
	env, ok := tables.LookupEnvironment(name)
	if !ok {
		return nil, p.fail(start, types.KindUndefinedEnvironment)
	}
	return env, nil
}

var columnAlign = map[byte]string{
	'l': "left",
	'c': "center",
	'r': "right",
}

// columnAlignment reads an {lcr} column specification and adds it to the
// table start tag. It returns the tag and the number of columns.
func (p *parser) columnAlignment(tagOn string) (string, int, error) {
	if p.lex.Peek() != '{' {
		return "", 0, p.fail(p.lex.Pos(), types.KindMissingLBrace)
	}
	p.lex.SkipChar()
	start := p.lex.Pos()
	spec, err := p.readAttribute('}')
	if err != nil {
		return "", 0, err
	}

	var aligns []string
	for i := 0; i < len(spec); i++ {
		if lexer.IsSpace(spec[i]) {
			continue
		}
		align, ok := columnAlign[spec[i]]
		if !ok {
			return "", 0, p.fail(start, types.KindUnknownAlignmentCharacter)
		}
		aligns = append(aligns, align)
	}
	if len(aligns) == 0 {
		return "", 0, p.fail(start, types.KindMissingColumnAlignment)
	}

	i := strings.IndexByte(tagOn, '>')
	tag := tagOn[:i] + " columnalign='" + strings.Join(aligns, " ") + "'" + tagOn[i:]
	return tag, len(aligns), nil
}

func (p *parser) onColumnSeparator(str *buffer.Buffer, tok lexer.Token, arr *arrayState) error {
	arr.columns++
	if arr.maxColumns > 0 && arr.columns > arr.maxColumns {
		return p.fail(tok.Offset, types.KindTooManyColumns)
	}
	str.WriteString("</mtd><mtd>")
	return nil
}

// onRowSeparator starts a new row. A separator directly before \end is
// ignored.
func (p *parser) onRowSeparator(str *buffer.Buffer, arr *arrayState) {
	if p.lex.FollowedBy(`\end`, lexer.NoSkip) {
		return
	}
	str.WriteString("</mtd></mtr><mtr><mtd>")
	arr.columns = 1
}
