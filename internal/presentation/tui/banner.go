package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Profile returns the color profile for w: plain ASCII unless w is a terminal.
func Profile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ColorProfile()
	}
	return termenv.Ascii
}

// Width returns the terminal width of w, or fallback when w is not a terminal.
func Width(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// PrintBanner outputs the ASCII art banner.
func PrintBanner(w io.Writer) {
	p := Profile(w)
	lines := []struct {
		text  string
		color string
	}{
		{"                  _             _                  _    ", "#34d399"},
		{"  ___ ___  _ __ | |_ ___ _ __ | |_ _ __  _   _| |__ ", "#2dd4bf"},
		{" / __/ _ \\| '_ \\| __/ _ \\ '_ \\| __| '_ \\| | | | '_ \\", "#22d3ee"},
		{"| (_| (_) | | | | ||  __/ | | | |_| |_) | |_| | |_) |", "#38bdf8"},
		{" \\___\\___/|_| |_|\\__\\___|_| |_|\\__| .__/ \\__,_|_.__/", "#60a5fa"},
		{"                                  |_|               ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Success prints a green check line.
func Success(w io.Writer, format string, args ...any) {
	p := Profile(w)
	fmt.Fprintln(w, p.String("✔ "+fmt.Sprintf(format, args...)).Foreground(p.Color("#22c55e")))
}

// Failure prints a bold red cross line.
func Failure(w io.Writer, format string, args ...any) {
	p := Profile(w)
	fmt.Fprintln(w, p.String("✘ "+fmt.Sprintf(format, args...)).Foreground(p.Color("#ef4444")).Bold())
}

// Notice prints a dimmed informational line.
func Notice(w io.Writer, format string, args ...any) {
	p := Profile(w)
	fmt.Fprintln(w, p.String(fmt.Sprintf(format, args...)).Foreground(p.Color("#a1a1aa")))
}
