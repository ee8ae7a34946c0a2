package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smasher164/untyped/eval"
)

const prompt = "λ> "

func newReplCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Reduce one expression per input line",
		Long: "repl reads expressions from standard input one line at a time and prints the\n" +
			"normal form of each. Errors are reported and the session continues.\n" +
			"An empty line is skipped; :quit or end of input ends the session.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return &usageError{errors.Errorf("repl takes no arguments, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer lines.Close()
			return s.repl(lines, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

type lineReader interface {
	Readline() (string, error)
	Close() error
}

// newLineReader uses readline when in is a terminal and a plain line
// scanner otherwise.
func newLineReader(in io.Reader, out io.Writer) (lineReader, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          prompt,
			Stdout:          out,
			InterruptPrompt: "^C",
			EOFPrompt:       ":quit",
		})
		if err != nil {
			return nil, errors.Wrap(err, "starting line editor")
		}
		return rl, nil
	}
	return &scanReader{bufio.NewScanner(in)}, nil
}

type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) Readline() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) Close() error { return nil }

func (s *session) repl(lines lineReader, out, errOut io.Writer) error {
	for {
		line, err := lines.Readline()
		switch {
		case err == readline.ErrInterrupt:
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return errors.Wrap(err, "reading input")
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		}
		res, err := s.eval.Eval(line)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", eval.Kind(err), err)
			continue
		}
		if err := eval.Write(out, res, s.config.Format); err != nil {
			return err
		}
	}
}
