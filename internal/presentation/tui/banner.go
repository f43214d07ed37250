package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/muesli/termenv"
)

var bannerLines = []string{
	" ___ _ _ _         ",
	"| __(_) | |___ _ _ ",
	"| _|| | | / -_) '_|",
	"|_| |_|_|_\\___|_|  ",
}

// PrintBanner writes the title, one palette color per line.
func PrintBanner(w io.Writer, p termenv.Profile) {
	palette := domain.Palette()
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		c := palette[i%len(palette)]
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(c.Hex())))
	}
	fmt.Fprintln(w)
}
