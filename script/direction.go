package script

import "unicode"

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional
// characters and returns the direction with the higher count, or Neutral if
// no strong directional characters are present.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch RuneDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	// If no strong directional characters, it's neutral
	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}

	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// RuneDirection returns the inherent direction of a single Unicode character.
// Digits, punctuation, whitespace, and symbols are Neutral; Arabic and Hebrew
// return RTL; all other letters return LTR.
func RuneDirection(r rune) Direction {
	// Numbers and neutral characters (check first, before script checks)
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}

	if IsArabicRune(r) || isHebrew(r) {
		return RTL
	}

	// Default to LTR for every other script
	return LTR
}

// isHebrew reports whether r is in a Hebrew Unicode block.
// This includes:
//   - Hebrew: U+0590–U+05FF
//   - Hebrew Presentation Forms: U+FB1D–U+FB4F
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}
