package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stacklex",
		Short: "A grammar-driven lexical scanner with nested states",
	}

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newGrammarsCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
