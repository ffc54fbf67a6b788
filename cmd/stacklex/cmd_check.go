package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/stacklex/grammarfile"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar.yaml>",
		Short: "Validate a YAML grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := grammarfile.Load(args[0])
			if err != nil {
				return err
			}
			types := grammar.TokenTypes()
			fmt.Printf("%s: ok (root %q, %d token types: %s)\n",
				args[0], grammar.Name(), len(types), strings.Join(types, ", "))
			return nil
		},
	}
}
