package main

import (
	"fmt"
	"strings"

	"github.com/Taha493/doc-translator/script"
	"github.com/Taha493/doc-translator/shaping"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// printComparison shapes text and prints a before/after comparison with
// code-point breakdowns. Shaping failures are reported but never abort the
// tool; the original text is shown in that case.
func printComparison(engine *shaping.Engine, text, lang string) {
	if text == "" {
		pterm.Warning.Println("empty input")
		return
	}
	if !script.IsArabicLanguageCode(lang) && !script.ContainsArabic(text) {
		pterm.Warning.Printf("not Arabic: lang %q, no Arabic code points in %q\n", lang, text)
		return
	}

	res := engine.Shape(text)
	if res.Fallback {
		pterm.Warning.Printf("shaping failed, showing original text: %v\n", res.Err)
	}

	pterm.Println("===== ARABIC TEXT SHAPING COMPARISON =====")
	pterm.Printf("Language tag:      %s\n", canonicalTag(lang))
	pterm.Printf("Detected direction: %s\n", script.DetectDirection(text))
	pterm.Printf("Original text:     %s\n", text)
	pterm.Printf("Original points:   %s\n", codePoints(text))
	pterm.Printf("Shaped text:       %s\n", res.Text)
	pterm.Printf("Shaped points:     %s\n", codePoints(res.Text))
}

// codePoints renders each rune of s with its U+XXXX code point.
func codePoints(s string) string {
	var b strings.Builder
	for _, r := range s {
		fmt.Fprintf(&b, "%c[U+%04X] ", r, r)
	}
	return strings.TrimRight(b.String(), " ")
}

// canonicalTag echoes the BCP 47 canonical form of lang when it parses,
// and the raw tag otherwise. Note that translation-pair tags like "en-ar"
// are not BCP 47; the raw tag is what the shaping gate actually sees.
func canonicalTag(lang string) string {
	if tag, err := language.Parse(lang); err == nil {
		return tag.String()
	}
	return lang
}
