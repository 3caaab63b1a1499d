package printer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/tracedecode"
)

func emitSample(s tracedecode.Sink) {
	s.Emit(tracedecode.TokenPunct, "{")
	s.Emit(tracedecode.TokenName, "sec")
	s.Emit(tracedecode.TokenPunct, "=")
	s.Emit(tracedecode.TokenValue, "1")
	s.Emit(tracedecode.TokenPunct, "}")
	s.Emit(tracedecode.TokenComment, "1970-01-01T00:00:01.000000000+0000")
	s.Emit(tracedecode.TokenPunct, ", ")
	s.Emit(tracedecode.TokenMarker, "...")
}

func TestText(t *testing.T) {
	out := NewText()
	emitSample(out)

	want := "{sec=1} /* 1970-01-01T00:00:01.000000000+0000 */, ..."
	if got := out.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if out.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", out.Len(), len(want))
	}

	out.Reset()
	if out.String() != "" {
		t.Errorf("Reset left %q", out.String())
	}
}

func TestStyledPlainTheme(t *testing.T) {
	plain := lipgloss.NewStyle()
	out := NewStyledWithTheme(Theme{Punct: plain, Name: plain, Value: plain, Marker: plain, Comment: plain})
	emitSample(out)

	ref := NewText()
	emitSample(ref)
	if out.String() != ref.String() {
		t.Errorf("styled with empty theme = %q, want %q", out.String(), ref.String())
	}
}

func TestStyledKeepsText(t *testing.T) {
	out := NewStyled()
	emitSample(out)
	for _, s := range []string{"sec", "1", "...", "1970-01-01T00:00:01.000000000+0000"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("styled output %q lost %q", out.String(), s)
		}
	}
}

func TestTee(t *testing.T) {
	a, b := NewText(), &Tokens{}
	emitSample(Tee{a, b})

	if a.String() == "" {
		t.Fatal("first sink received nothing")
	}
	want := []Token{
		{Kind: tracedecode.TokenPunct, Text: "{"},
		{Kind: tracedecode.TokenName, Text: "sec"},
		{Kind: tracedecode.TokenPunct, Text: "="},
		{Kind: tracedecode.TokenValue, Text: "1"},
		{Kind: tracedecode.TokenPunct, Text: "}"},
		{Kind: tracedecode.TokenComment, Text: "1970-01-01T00:00:01.000000000+0000"},
		{Kind: tracedecode.TokenPunct, Text: ", "},
		{Kind: tracedecode.TokenMarker, Text: "..."},
	}
	if diff := cmp.Diff(want, b.List); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}
