package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/printer"
)

// lineSink is a sink that can hand back and discard what it collected.
type lineSink interface {
	tracedecode.Sink
	String() string
	Reset()
}

// newLineSink resolves a --color mode to a sink for stdout.
func newLineSink(mode string) (lineSink, error) {
	switch mode {
	case "never":
		return printer.NewText(), nil
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return printer.NewStyled(), nil
	case "auto", "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return printer.NewStyled(), nil
		}
		return printer.NewText(), nil
	default:
		return nil, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
}
