package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the nbserve ASCII art banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"        _                          ", "#f59e0b"},
		{"  _ __ | |__  ___  ___ _ ____   _____ ", "#f97316"},
		{" | '_ \\| '_ \\/ __|/ _ \\ '__\\ \\ / / _ \\", "#ef4444"},
		{" | | | | |_) \\__ \\  __/ |   \\ V /  __/", "#e11d48"},
		{" |_| |_|_.__/|___/\\___|_|    \\_/ \\___|", "#db2777"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
