package ui

import "strings"

const (
	reset       = "\033[0m"
	bold        = "\033[1m"
	honeyOrange = "\033[38;5;214m"
	beeYellow   = "\033[38;5;226m"
	mint        = "\033[38;5;121m"
	seafoam     = "\033[38;5;49m"
	cobalt      = "\033[38;5;33m"
	deepIndigo  = "\033[38;5;61m"
	fuchsia     = "\033[38;5;177m"
)

var (
	letterP = []string{"██████╗  ", "██╔══██╗ ", "██████╔╝ ", "██╔═══╝  ", "██║      ", "╚═╝      "}
	letterR = []string{"██████╗  ", "██╔══██╗ ", "██████╔╝ ", "██╔══██╗ ", "██║  ██║ ", "╚═╝  ╚═╝ "}
	letterO = []string{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "}
	letterC = []string{" ██████╗ ", "██╔════╝ ", "██║      ", "██║      ", "╚██████╗ ", " ╚═════╝ "}
	letterT = []string{"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "}
)

// Banner renders a colored proctop wordmark.
func Banner() string {
	var b strings.Builder

	letters := [][]string{letterP, letterR, letterO, letterC, letterT, letterO, letterP}
	gradient := []string{honeyOrange, beeYellow, mint, seafoam, cobalt, deepIndigo, fuchsia}
	rows := make([]string, len(letters[0]))
	for i, letter := range letters {
		color := gradient[i%len(gradient)]
		for row := 0; row < len(letter); row++ {
			rows[row] += color + letter[row] + " "
		}
	}
	for _, line := range rows {
		b.WriteString(bold + line + reset + "\n")
	}

	b.WriteString("\n")
	b.WriteString(bold + honeyOrange + "proctop" + reset + "  •  live process table\n\n")

	return b.String()
}
