package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Input reads lines from the terminal for prompts.
type Input interface {
	// ReadLine writes prompt and reads one line of input.
	ReadLine(prompt string) (string, error)
	// ReadSecret is like ReadLine but suppresses echo when the input is a
	// real terminal. On non-terminal inputs the suppression is advisory
	// only and the line is read normally.
	ReadSecret(prompt string) (string, error)
}

// TTYInput reads from an io.Reader, echoing prompts to an io.Writer.
type TTYInput struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewTTYInput creates an Input over the given reader and writer, typically
// os.Stdin and os.Stdout.
func NewTTYInput(in io.Reader, out io.Writer) *TTYInput {
	return &TTYInput{in: in, out: out, reader: bufio.NewReader(in)}
}

// ReadLine writes prompt and reads one newline-terminated line.
func (t *TTYInput) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret reads a line with echo disabled when possible.
func (t *TTYInput) ReadSecret(prompt string) (string, error) {
	f, ok := t.in.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return t.ReadLine(prompt)
	}

	fmt.Fprint(t.out, prompt)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
