package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// Message colors
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header = color.New(color.FgWhite, color.Bold)

	// Coverage labels
	Multi  = color.New(color.FgMagenta, color.Bold)
	Single = color.New(color.FgGreen)
)

// Label texts used by the coverage report
const (
	LabelMulti = "[MULTI]"
	LabelOK    = "[OK]"
)

// ColorMode controls when ANSI colors are emitted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string. An empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be auto, always or never", s)
	}
}

// Apply sets the global color state. Auto leaves fatih/color's own terminal
// detection in place.
func (m ColorMode) Apply() {
	switch m {
	case ColorAlways:
		ForceColor()
	case ColorNever:
		NoColor()
	}
}

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// FormatLabel returns the padded, colored coverage label
func FormatLabel(multi bool) string {
	if multi {
		return Multi.Sprintf("%-7s", LabelMulti)
	}
	return Single.Sprintf("%-7s", LabelOK)
}

// PrintError prints an error line to w
func PrintError(w io.Writer, format string, args ...interface{}) {
	Error.Fprintf(w, format+"\n", args...)
}

