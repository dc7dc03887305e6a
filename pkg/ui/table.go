package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/srodi/proctop/pkg/types"
)

const (
	pidWidth     = 8
	commandWidth = 20
	memWidth     = 12
	separator    = "---------------------------------------------------"
	exitHint     = " (Press Ctrl+C to exit)"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// FrameOptions controls the decorations around the process table.
type FrameOptions struct {
	Banner bool
}

// RenderFrame writes one full frame: optional banner, header, rows in the
// order given, and the exit hint. Rows are expected to be sorted already.
func RenderFrame(w io.Writer, rows []types.DerivedRow, opts FrameOptions) error {
	var buf bytes.Buffer
	if opts.Banner {
		buf.WriteString(Banner())
	}

	header := fmt.Sprintf("%-*s%-*s%-*s%s", pidWidth, "PID", commandWidth, "COMMAND", memWidth, "MEM (MB)", "CPU %")
	buf.WriteString(headerStyle.Render(header))
	buf.WriteString("\n")
	buf.WriteString(separator)
	buf.WriteString("\n")

	for _, row := range rows {
		fmt.Fprintf(&buf, "%-*d%s%10.2f  %6.2f%%\n",
			pidWidth, row.PID,
			runewidth.FillRight(truncateName(row.Comm), commandWidth),
			row.MemoryMB, row.CPUPercent)
	}

	buf.WriteString(separator)
	buf.WriteString("\n")
	buf.WriteString(hintStyle.Render(exitHint))
	buf.WriteString("\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// truncateName fits a command name into types.NameWidth display cells. Only
// the displayed text is shortened; the row keeps its full name.
func truncateName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, name)
	return runewidth.Truncate(name, types.NameWidth, "")
}

// ClearScreen moves the cursor home and clears the display.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
