package main

import (
	"fmt"
	"io"

	"github.com/pgfjr/tex2mml/runtime/parser"
)

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *conversionError:
		formatter := parser.ErrorFormatter{
			Source:   e.source,
			Filename: e.filename,
			Color:    useColor,
		}
		_, _ = fmt.Fprint(w, formatter.Format(e.err))
	case *parser.ConvertError:
		formatter := parser.ErrorFormatter{Color: useColor}
		_, _ = fmt.Fprint(w, formatter.Format(e))
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	}
}
