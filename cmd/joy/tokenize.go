package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"joy/internal/diagfmt"
	"joy/internal/driver"
)

func newTokenizeCmd(flags *globalFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.joy",
		Short: "Tokenize a Joy source file",
		Long:  `Tokenize prints every token of a Joy source file with its position and leading trivia`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := resolveOptions(cmd, flags, args[0])
			if err != nil {
				return err
			}
			result, err := driver.Tokenize(cmd.Context(), args[0], opts)
			if err != nil {
				return fmt.Errorf("tokenization failed: %w", err)
			}

			if result.Bag.Len() > 0 && !flags.quiet {
				diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
					Color:   useColor(flags.color, os.Stderr),
					Context: 1,
				})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "pretty":
				err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
			case "json":
				err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			if err != nil {
				return err
			}
			if result.Bag.HasErrors() {
				return exitCodeError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
