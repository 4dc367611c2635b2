package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgfjr/tex2mml/runtime/lexer"
)

func (a *app) tokensCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tokens [formula]",
		Short: "Print the math-mode tokens of a formula",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				data, _, err := a.readInput(file)
				if err != nil {
					return err
				}
				input = string(data)
			}

			lex := lexer.New(input, lexer.WithLogger(a.logger()))
			tokens, err := lex.Tokenize(lexer.SkipAll)
			for _, tok := range tokens {
				_, _ = fmt.Fprintln(a.stdout, tok.String())
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the formula from a file (- for stdin)")
	return cmd
}
