// Package ui abstracts the prompt/response surface of the trainer so the
// session loop can run against scripted input instead of a terminal.
package ui

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter shows text to the user and reads single-line responses.
type Prompter interface {
	// Ask shows the prompt and blocks for one line of input.
	Ask(prompt string) (string, error)
	// Say shows a line of output without waiting for a response.
	Say(format string, args ...any)
}

// Terminal is a Prompter over a line-oriented reader and writer,
// normally stdin and stdout.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal returns a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// Ask implements Prompter. A closed input stream surfaces as io.EOF.
func (t *Terminal) Ask(prompt string) (string, error) {
	fmt.Fprintln(t.out, prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

// Say implements Prompter.
func (t *Terminal) Say(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}
