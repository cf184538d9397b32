package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output helpers - use these for consistent styled output across commands.
// Regular output goes to stdout, errors and warnings to stderr.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects styled output, mainly for tests. A nil writer leaves the stream unchanged.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Title prints a styled title/header
func Title(text string) {
	fmt.Fprintln(stdout, TitleStyle.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	fmt.Fprintln(stdout, SuccessStyle.Render("✓ "+text))
}

// Error prints a single error line on stderr
func Error(text string) {
	fmt.Fprintln(stderr, ErrorStyle.Render("✗ "+text))
}

// Warning prints a warning message on stderr
func Warning(text string) {
	fmt.Fprintln(stderr, WarningStyle.Render("! "+text))
}

// Dim prints dimmed/secondary text
func Dim(text string) {
	fmt.Fprintln(stdout, DimStyle.Render("  "+text))
}

// Step prints a step instruction
func Step(text string) {
	fmt.Fprintln(stdout, StepStyle.Render(text))
}

// Box prints text in a bordered box
func Box(text string) {
	fmt.Fprintln(stdout, BoxStyle.Render(strings.TrimRight(text, "\n")))
}

// Line prints an empty line
func Line() {
	fmt.Fprintln(stdout)
}

// Print prints plain text
func Print(text string) {
	fmt.Fprintln(stdout, text)
}

// Render functions - return styled string without printing (for composition)

func RenderCode(text string) string {
	return CodeStyle.Render(text)
}

func RenderAccent(text string) string {
	return AccentStyle.Render(text)
}

func RenderDim(text string) string {
	return DimStyle.Render(text)
}
