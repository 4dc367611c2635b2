package parser

import (
	"strings"

	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/buffer"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// onFence renders \left<delim> ... \right<delim> as an mfenced element.
// Round parentheses are the mfenced defaults and are omitted.
func (p *parser) onFence(str *buffer.Buffer, cmd *tables.Command) error {
	open, err := p.readDelimiter()
	if err != nil {
		return err
	}
	body := p.newBuffer()
	if err := p.runLoop(body, contextFenced, nil); err != nil {
		return err
	}
	closing, err := p.readDelimiter()
	if err != nil {
		return err
	}

	fenced := p.newBuffer()
	fenced.WriteString(strings.TrimSuffix(cmd.TagOn, ">"))
	if open.Code != '(' {
		fenced.Writef(" open='%s'", open.Output())
	}
	if closing.Code != ')' {
		fenced.Writef(" close='%s'", closing.Output())
	}
	fenced.WriteString("><mrow>")
	fenced.Append(body, true)
	fenced.WriteString(cmd.TagOff)
	str.Append(fenced, true)
	return nil
}

// readDelimiter reads the delimiter after \left or \right.
func (p *parser) readDelimiter() (*tables.Fence, error) {
	tok, err := p.next(lexer.SkipAll)
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case lexer.SYMBOL, lexer.CONTROL_SYMBOL, lexer.CONTROL_NAME, lexer.RBRACKET:
		if fence, ok := tables.LookupFence(tok.Text); ok {
			return fence, nil
		}
	}
	return nil, p.fail(tok.Offset, types.KindMissingFenceParameter)
}
