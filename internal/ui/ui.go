// Package ui renders styled terminal output for the CLI. Styling is applied
// only when stdout is an interactive terminal.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	failStyle    = lipgloss.NewStyle().Foreground(colorRed)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// Header prints a bold stage banner.
func Header(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Println(render(headerStyle, "== "+line+" "+strings.Repeat("=", max(0, 56-len(line)))))
}

// Success prints a check-marked line.
func Success(format string, args ...any) {
	fmt.Println(render(successStyle, "[OK] "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func Warn(format string, args ...any) {
	fmt.Println(render(warnStyle, "[??] "+fmt.Sprintf(format, args...)))
}

// Fail prints a failure line.
func Fail(format string, args ...any) {
	fmt.Println(render(failStyle, "[!!] "+fmt.Sprintf(format, args...)))
}

// Dim prints secondary information.
func Dim(format string, args ...any) {
	fmt.Println(render(dimStyle, "     "+fmt.Sprintf(format, args...)))
}

func render(style lipgloss.Style, s string) string {
	if !IsInteractive() {
		return s
	}
	return style.Render(s)
}

// IsInteractive reports whether stdout is an interactive terminal.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
