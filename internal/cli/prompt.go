package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Environment variables consulted before prompting.
const (
	envEmail    = "EDU_EMAIL"
	envPassword = "EDU_PASSWORD"
)

// prompter reads missing values from the command's input. Secrets are read
// without echo when the input is a terminal.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, out: cmd.ErrOrStderr(), reader: bufio.NewReader(in)}
}

// value returns flag, then the environment variable env, then a prompted
// line.
func (p *prompter) value(flag, env, label string) (string, error) {
	if v := strings.TrimSpace(flag); v != "" {
		return v, nil
	}
	if env != "" {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, nil
		}
	}
	return p.line(label)
}

// secret is value for passwords.
func (p *prompter) secret(flag, env, label string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env != "" {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(p.out, "%s: ", label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}
		return string(b), nil
	}
	return p.line(label)
}

func (p *prompter) line(label string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	text, err := p.reader.ReadString('\n')
	text = strings.TrimRight(text, "\r\n")
	if err != nil && text == "" {
		return "", fmt.Errorf("%s: %w", strings.ToLower(label), errNonInteractive)
	}
	return text, nil
}
