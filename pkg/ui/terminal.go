package ui

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// EnableSingleView switches a terminal stdout to the alternate buffer and hides
// the cursor so each frame repaints in place. The returned func restores the
// terminal. When out is not a terminal nothing changes.
func EnableSingleView(out, in *os.File, logger zerolog.Logger) func() {
	if !term.IsTerminal(int(out.Fd())) {
		return func() {}
	}

	fmt.Fprint(out, "\033[?1049h") // switch to alternate buffer
	fmt.Fprint(out, "\033[?25l")   // hide cursor

	var restore []func()
	if term.IsTerminal(int(in.Fd())) {
		if undoEcho, err := disableInputEcho(int(in.Fd())); err != nil {
			logger.Warn().Err(err).Msg("unable to suppress stdin echo")
		} else if undoEcho != nil {
			restore = append(restore, undoEcho)
		}
	}

	return func() {
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
		fmt.Fprint(out, "\033[?25h")   // show cursor
		fmt.Fprint(out, "\033[?1049l") // restore main buffer
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
