// SPDX-License-Identifier: MIT

package resolver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/present"
)

// TerminalPrompter asks questions on a line-oriented reader/writer pair,
// typically stdin and stdout.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	st  present.Styler
}

// NewTerminalPrompter returns a prompter reading answers from in and
// writing questions to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
		st:  present.NewStyler(out),
	}
}

// Ask prints label and returns the next input line without its line ending.
// A final line without a newline is returned as is; reading past the end of
// input returns io.EOF.
func (p *TerminalPrompter) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Choose lists the candidates and reads the intended person id.
func (p *TerminalPrompter) Choose(name string, candidates []core.Person) (core.PersonID, error) {
	if _, err := fmt.Fprintf(p.out, "%s\n", p.st.Heading(fmt.Sprintf("Which '%s'?", name))); err != nil {
		return "", err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(p.out, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, c.Birth); err != nil {
			return "", err
		}
	}
	answer, err := p.Ask("Intended Person ID: ")
	if err != nil {
		return "", err
	}

	return core.PersonID(strings.TrimSpace(answer)), nil
}
