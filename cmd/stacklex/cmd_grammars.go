package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/stacklex/grammars"
)

func newGrammarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List the built-in grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range grammars.Names() {
				build, err := grammars.Lookup(name)
				if err != nil {
					return err
				}
				types := build().TokenTypes()
				fmt.Printf("%-10s %s\n", name, strings.Join(types, ", "))
			}
			return nil
		},
	}
}
