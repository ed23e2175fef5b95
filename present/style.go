// SPDX-License-Identifier: MIT

package present

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// palette
var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorMovie  = lipgloss.Color("#F4D03F")
	colorMuted  = lipgloss.Color("#6C7A89")
	colorError  = lipgloss.Color("#E74C3C")
)

// Styler decorates fragments of output. The zero value renders plain text.
type Styler struct {
	enabled bool
	heading lipgloss.Style
	person  lipgloss.Style
	movie   lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
}

// NewStyler returns a colouring Styler when w is a terminal and a plain one
// otherwise.
func NewStyler(w io.Writer) Styler {
	if !IsTerminal(w) {
		return Styler{}
	}

	return Styler{
		enabled: true,
		heading: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		person:  lipgloss.NewStyle().Bold(true),
		movie:   lipgloss.NewStyle().Italic(true).Foreground(colorMovie),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		failure: lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Enabled reports whether the styler emits escape sequences.
func (s Styler) Enabled() bool { return s.enabled }

func (s Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// Heading styles a section heading.
func (s Styler) Heading(text string) string { return s.render(s.heading, text) }

// Person styles a person's name.
func (s Styler) Person(text string) string { return s.render(s.person, text) }

// Movie styles a movie title.
func (s Styler) Movie(text string) string { return s.render(s.movie, text) }

// Muted styles secondary text.
func (s Styler) Muted(text string) string { return s.render(s.muted, text) }

// Failure styles an error or negative result.
func (s Styler) Failure(text string) string { return s.render(s.failure, text) }
