package internal

import (
	"strings"
)

// Package internal: UI helpers (exported)
//
// Color usage
// - Enable or disable color globally via SetColorEnabled(true/false).
// - Wrap text with Style("text", Bold, Blue) to apply codes when enabled.
// - When disabled, Style returns the input unchanged.
//
// The CLI disables color when stdout is not a terminal or --no-color is set,
// so piped ciphertext never carries escape codes.

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// ANSI escape codes (exported)
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m"
	Cyan   = "\x1b[38;2;42;195;222m"
	Purple = "\x1b[38;2;187;154;247m"
	Gray   = "\x1b[38;2;136;146;176m"
	Red    = "\x1b[38;2;247;118;142m"
	Green  = "\x1b[38;2;158;206;106m"
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether ANSI styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, codes ...string) string {
	if !colorEnabled || len(codes) == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("CipherRiot - Classical Cipher Toolkit - "+version, Bold, Purple)
}

// Label renders a "name: value" line with the name dimmed, as used for the
// encode/decode summaries.
func Label(name, value string) string {
	return Style(name+":", Gray) + " " + value
}
