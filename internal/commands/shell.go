package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	errNestedShell       = errors.New("already in a shell")
	errUnterminatedQuote = errors.New("parsing line: unterminated quote")
)

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands against one in-memory session",
		Long: "Read commands from stdin, one per line, and run them against a single " +
			"in-memory session so that searches, pages and changes carry over between lines. " +
			"Type exit or quit to leave.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.inShell {
				return errNestedShell
			}
			if _, err := a.session(); err != nil {
				return err
			}
			a.inShell = true
			defer func() { a.inShell = false }()
			return a.runShell(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func (a *app) runShell(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		args, err := splitLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		line := newRootCommand(a)
		line.SetArgs(args)
		line.SetIn(in)
		line.SetOut(out)
		line.SetErr(errOut)
		// cobra prints the error itself; the shell keeps going.
		if err := line.Execute(); err != nil {
			a.log.Debug().Err(err).Strs("args", args).Msg("shell command failed")
		}
	}
}

// splitLine splits a shell line on blanks. Double quotes group words and
// keep an empty argument such as "" as one field.
func splitLine(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inQuotes, inField := false, false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			inField = true
		case (r == ' ' || r == '\t') && !inQuotes:
			if inField {
				args = append(args, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}
	if inQuotes {
		return nil, errUnterminatedQuote
	}
	if inField {
		args = append(args, cur.String())
	}
	return args, nil
}
