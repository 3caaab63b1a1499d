// Package printer provides output sinks for decoded arguments.
//
// Text accumulates plain strace-style output. Styled does the same but colours
// each token with lipgloss, for terminals.
package printer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/tracedecode"
)

// Text collects plain output. The zero value is ready to use.
type Text struct {
	b strings.Builder
}

// NewText returns an empty Text sink.
func NewText() *Text {
	return &Text{}
}

// Emit appends text. Comments are framed as " /* text */".
func (t *Text) Emit(tok tracedecode.Token, text string) {
	if tok == tracedecode.TokenComment {
		t.b.WriteString(" /* ")
		t.b.WriteString(text)
		t.b.WriteString(" */")
		return
	}
	t.b.WriteString(text)
}

// String returns everything emitted so far.
func (t *Text) String() string {
	return t.b.String()
}

// Reset discards the collected output.
func (t *Text) Reset() {
	t.b.Reset()
}

// Len returns the number of bytes collected.
func (t *Text) Len() int {
	return t.b.Len()
}

// Theme assigns a style to every token kind.
type Theme struct {
	Punct   lipgloss.Style
	Name    lipgloss.Style
	Value   lipgloss.Style
	Marker  lipgloss.Style
	Comment lipgloss.Style
}

// DefaultTheme is used by NewStyled.
var DefaultTheme = Theme{
	Punct:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
	Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	Comment: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true),
}

// Styled collects output rendered with a Theme.
type Styled struct {
	theme Theme
	b     strings.Builder
}

// NewStyled returns a Styled sink using DefaultTheme.
func NewStyled() *Styled {
	return NewStyledWithTheme(DefaultTheme)
}

// NewStyledWithTheme returns a Styled sink using theme.
func NewStyledWithTheme(theme Theme) *Styled {
	return &Styled{theme: theme}
}

func (s *Styled) Emit(tok tracedecode.Token, text string) {
	switch tok {
	case tracedecode.TokenPunct:
		s.b.WriteString(s.theme.Punct.Render(text))
	case tracedecode.TokenName:
		s.b.WriteString(s.theme.Name.Render(text))
	case tracedecode.TokenMarker:
		s.b.WriteString(s.theme.Marker.Render(text))
	case tracedecode.TokenComment:
		s.b.WriteByte(' ')
		s.b.WriteString(s.theme.Comment.Render("/* " + text + " */"))
	default:
		s.b.WriteString(s.theme.Value.Render(text))
	}
}

func (s *Styled) String() string {
	return s.b.String()
}

func (s *Styled) Reset() {
	s.b.Reset()
}

// Tee forwards every token to all of its sinks.
type Tee []tracedecode.Sink

func (t Tee) Emit(tok tracedecode.Token, text string) {
	for _, s := range t {
		s.Emit(tok, text)
	}
}

// Token is one recorded Emit call.
type Token struct {
	Text string
	Kind tracedecode.Token
}

// Tokens records the raw token stream, mostly for tests.
type Tokens struct {
	List []Token
}

func (t *Tokens) Emit(tok tracedecode.Token, text string) {
	t.List = append(t.List, Token{Kind: tok, Text: text})
}
