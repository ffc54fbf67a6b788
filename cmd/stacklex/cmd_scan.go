package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/stacklex/format"
	"github.com/dhamidi/stacklex/grammarfile"
	"github.com/dhamidi/stacklex/grammars"
	"github.com/dhamidi/stacklex/lex"
)

func newScanCmd() *cobra.Command {
	var grammarName string
	var grammarPath string
	var outputFormat string
	var bestEffort bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Tokenize a file and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			grammar, err := resolveGrammar(grammarName, grammarPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			lx := lex.NewLexer(grammar)
			if bestEffort {
				lx.BestEffort()
			}
			if debug {
				lx.Debug(os.Stderr)
			}

			tokens, err := lx.LexNamed(filename, string(data))
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(tokens); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if stopped := lx.StoppedAt(); stopped.Offset < len(data) {
				fmt.Fprintf(os.Stderr, "scan stopped early at %s\n", stopped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "sexpr", "built-in grammar to scan with")
	cmd.Flags().StringVar(&grammarPath, "grammar-file", "", "YAML grammar file (overrides --grammar)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text or json")
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "return the tokens scanned so far instead of failing")
	cmd.Flags().BoolVar(&debug, "debug", false, "echo tokens to stderr as they are matched")

	return cmd
}

func resolveGrammar(name, path string) (*lex.Grammar[string], error) {
	if path != "" {
		grammar, err := grammarfile.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load grammar: %w", err)
		}
		return grammar, nil
	}
	build, err := grammars.Lookup(name)
	if err != nil {
		return nil, err
	}
	return build(), nil
}
