package script

import "strings"

// IsArabicLanguageCode reports whether a language tag denotes Arabic.
// It accepts plain tags ("ar", "AR") as well as hyphenated translation
// pairs with Arabic in the first or last position ("ar-en", "en-ar",
// "EN-AR"). The check is case-insensitive and purely syntactic; tags are
// not validated against any ISO registry. An empty tag is not Arabic.
func IsArabicLanguageCode(tag string) bool {
	if tag == "" {
		return false
	}
	tag = strings.ToLower(tag)
	return tag == "ar" || strings.HasPrefix(tag, "ar-") || strings.HasSuffix(tag, "-ar")
}

// ContainsArabic reports whether s contains at least one rune in the
// Arabic block (U+0600–U+06FF) or the Arabic Presentation Forms-A block
// (U+FB50–U+FDFF). It is the gate used before any reshaping work: text
// without such runes is passed through the pipeline untouched.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if (r >= 0x0600 && r <= 0x06FF) || (r >= 0xFB50 && r <= 0xFDFF) {
			return true
		}
	}
	return false
}

// ContainsShapedArabic reports whether s contains runes from the Arabic
// Presentation Forms blocks (U+FB50–U+FDFF, U+FE70–U+FEFF), i.e. text
// that has already been through contextual shaping. Some machine
// translation engines emit such pre-shaped output; it must be normalized
// back to base letters before being reshaped.
func ContainsShapedArabic(s string) bool {
	for _, r := range s {
		if (r >= 0xFB50 && r <= 0xFDFF) || (r >= 0xFE70 && r <= 0xFEFF) {
			return true
		}
	}
	return false
}

// IsArabicRune reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func IsArabicRune(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}
