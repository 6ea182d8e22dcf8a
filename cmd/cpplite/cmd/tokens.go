package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the token stream of a C++Lite program",
		Long: `Print the tokens of a C++Lite program, one per line, as

  line:column Category(text)

The stream ends with Eof. Scanning stops at the first illegal character.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, src, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			e, err := a.engine(false)
			if err != nil {
				return err
			}

			toks, err := e.Tokenize(src)
			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%d:%d %s\n", tok.Line, tok.Column, tok)
			}
			return err
		},
	}
}
