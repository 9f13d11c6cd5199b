package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode describes how command output should be rendered.
type OutputMode int

const (
	// OutputModePlain is unstyled text for pipes and dumb terminals.
	OutputModePlain OutputMode = iota

	// OutputModeStyled is colored, non-interactive output.
	OutputModeStyled

	// OutputModeInteractive runs the full-screen TUI.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode from the terminal environment.
// plain and noColor force degraded modes; NO_COLOR is honored per
// https://no-color.org.
func DetectOutputMode(plain, noColor, nonInteractive bool) OutputMode {
	if plain {
		return OutputModePlain
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputModePlain
	}

	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}

	if nonInteractive || os.Getenv("CI") != "" {
		return OutputModeStyled
	}

	return OutputModeInteractive
}
