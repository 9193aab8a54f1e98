package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads answers from the command's stdin.
type prompter struct {
	in  io.Reader
	r   *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, r: bufio.NewReader(in), out: cmd.OutOrStdout()}
}

// line asks for one line; an empty answer yields def.
func (p *prompter) line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	s, err := p.r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && s == "":
		return "", fmt.Errorf("%s: no input", label)
	case err != nil && !errors.Is(err, io.EOF):
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return s, nil
}

// secret asks without echo when stdin is a terminal.
func (p *prompter) secret(label string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(p.out, "%s: ", label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		return string(b), err
	}
	return p.line(label, "")
}

// confirm asks a yes/no question; only y or yes is a yes.
func (p *prompter) confirm(label string) (bool, error) {
	s, err := p.line(label+" (y/N)", "")
	if err != nil {
		return false, err
	}
	s = strings.ToLower(s)
	return s == "y" || s == "yes", nil
}
