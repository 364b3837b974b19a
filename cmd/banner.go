package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
)

const (
	colorReset = "\x1b[0m"
	colorCyan  = "\x1b[1;36m"
)

// printBanner prints the startup ASCII banner.
func printBanner() {
	fig := figure.NewFigure("picoTherm", "", true)
	for _, line := range fig.Slicify() {
		fmt.Println(colorCyan + line + colorReset)
	}
	fmt.Println()
}
