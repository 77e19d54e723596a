package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/extracttext/internal/folding"
)

var foldCmd = &cobra.Command{
	Use:   "fold [TEXT...]",
	Short: "Fold Unicode text to plain ASCII",
	Long: `Fold typographic Unicode such as smart quotes, dashes, special spaces and
fullwidth forms to plain ASCII. Letters in the legal text range, accented
ones included, pass through unchanged.

Text is taken from the arguments, joined by spaces, or read from stdin.

Examples:
  extracttext fold "$(pbpaste)"
  cat notes.txt | extracttext fold`,
	RunE: runFold,
}

func init() {
	rootCmd.AddCommand(foldCmd)
}

func runFold(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), folding.String(strings.Join(args, " ")))
		return nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("no input: pass text as arguments or pipe it on stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), folding.String(string(data)))
	return err
}
