package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/stacklex/lsp"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	var grammarName string
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a semantic-token Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server, err := lsp.NewServer(version, grammarName)
			if err != nil {
				return err
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "sexpr", "built-in grammar to highlight with")
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	return cmd
}
