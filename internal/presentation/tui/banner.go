package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the matfeas startup banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	title := termenv.String(" matfeas ").Foreground(p.Color("#34d399")).Bold()
	sub := termenv.String("feasibility triage for hypothetical compounds").Foreground(p.Color("#6ee7b7"))

	fmt.Println()
	fmt.Println(title)
	fmt.Println(sub)
	fmt.Println()
}
