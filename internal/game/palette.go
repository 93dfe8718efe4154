// internal/game/palette.go
//
// Palette helpers: color names, parsing and code validation.
//
// Colors parse case-insensitively from their English name ("red", "Red")
// or from their 1-based palette position ("3"), matching the numbering
// used by the console prompts.

package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var colorNames = map[Color]string{
	Black:  "BLACK",
	White:  "WHITE",
	Red:    "RED",
	Green:  "GREEN",
	Blue:   "BLUE",
	Yellow: "YELLOW",
}

var titleCaser = cases.Title(language.English)

// String returns the upper-case color name, or "?" for invalid values.
func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return "?"
}

// Name returns the title-cased display name ("Black").
func (c Color) Name() string {
	return titleCaser.String(strings.ToLower(c.String()))
}

// Valid reports whether c is part of Palette.
func (c Color) Valid() bool { return c >= Black && c <= Yellow }

// ParseColor maps a color name or 1-based palette index to a Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Palette) {
			return Palette[n-1], nil
		}
		return 0, fmt.Errorf("%w: color index %d out of range 1-%d", ErrInvalidInput, n, len(Palette))
	}
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidInput, s)
}

// ParseCode parses whitespace- or comma-separated colors into a Code.
// The result is validated.
func ParseCode(s string) (Code, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '|'
	})
	code := make(Code, 0, len(fields))
	for _, f := range fields {
		c, err := ParseColor(f)
		if err != nil {
			return nil, err
		}
		code = append(code, c)
	}
	if err := code.Validate(); err != nil {
		return nil, err
	}
	return code, nil
}

// Validate checks length and palette membership.
func (c Code) Validate() error {
	if len(c) != CodeLength {
		return fmt.Errorf("%w: code must have %d pegs, got %d", ErrInvalidInput, CodeLength, len(c))
	}
	for i, p := range c {
		if !p.Valid() {
			return fmt.Errorf("%w: peg %d has unknown color %d", ErrInvalidInput, i+1, p)
		}
	}
	return nil
}

// Clone returns an independent copy so callers cannot alias game state.
func (c Code) Clone() Code {
	if c == nil {
		return nil
	}
	out := make(Code, len(c))
	copy(out, c)
	return out
}

// Names returns the display names of every peg.
func (c Code) Names() []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.Name()
	}
	return out
}

func (c Code) String() string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
