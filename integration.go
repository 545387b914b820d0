// integration.go splices shaped Arabic text back into document-model objects.
package doctranslator

import (
	"fmt"

	"github.com/Taha493/doc-translator/model"
	"github.com/Taha493/doc-translator/script"
	"github.com/Taha493/doc-translator/shaping"
)

// The model's text carriers must satisfy the shaping capability interface.
var (
	_ shaping.UnicodeHolder = (*model.Paragraph)(nil)
	_ shaping.UnicodeHolder = (*model.SameStyleUnicodeChars)(nil)
)

// ApplyToText returns the shaped form of text if langCode denotes Arabic,
// and text unchanged otherwise. It is the pure-function integration point;
// the caller owns what to do with the result.
func ApplyToText(e *shaping.Engine, text, langCode string) string {
	if text == "" || !script.IsArabicLanguageCode(langCode) {
		return text
	}
	return e.ShapeText(text)
}

// ApplyToParagraph shapes a paragraph's unicode buffer in place if langCode
// denotes Arabic. The buffer is only rewritten when shaping changed it.
// A nil holder or an empty buffer is a silent no-op.
//
// The gate here is the language tag alone: paragraph-level tags come from
// the translation request and are trusted, so Arabic code points under a
// non-Arabic tag (quoted fragments, citations) are deliberately left alone.
func ApplyToParagraph(e *shaping.Engine, p shaping.UnicodeHolder, langCode string) {
	if p == nil || !script.IsArabicLanguageCode(langCode) {
		return
	}
	original := p.UnicodeText()
	if original == "" {
		return
	}
	shaped := e.ShapeText(original)
	if shaped != original {
		p.SetUnicodeText(shaped)
		tracer().Debugf("paragraph shaping: %q -> %q", original, shaped)
	}
}

// ApplyToComposition shapes a composition's same-style unicode run in
// place. Compositions often lack reliable per-run language metadata, so
// the gate is broader than the paragraph one: the language tag or the
// presence of Arabic code points in the run itself. A composition without
// a unicode run is a silent no-op.
func ApplyToComposition(e *shaping.Engine, c *model.Composition, langCode string) {
	if c == nil || c.SameStyleUnicodeChars == nil {
		return
	}
	chars := c.SameStyleUnicodeChars
	original := chars.Unicode
	if original == "" {
		return
	}
	if !script.IsArabicLanguageCode(langCode) && !script.ContainsArabic(original) {
		return
	}
	shaped := e.ShapeText(original)
	if shaped != original {
		chars.Unicode = shaped
		tracer().Debugf("composition shaping: %q -> %q", original, shaped)
	}
}

// ShapeDocumentWith walks every paragraph and composition of doc, applying
// Arabic shaping with the given engine. Vertical paragraphs are skipped.
// It returns the non-fatal warnings collected along the way; runs that
// could not be shaped stay in their original form.
func ShapeDocumentWith(e *shaping.Engine, doc *model.Document, langCode string) []Warning {
	if doc == nil {
		return nil
	}
	arabicTag := script.IsArabicLanguageCode(langCode)

	var warnings []Warning
	for _, page := range doc.Pages {
		for _, para := range page.Paragraphs {
			if para == nil || para.Vertical {
				continue
			}
			if arabicTag && para.Unicode != "" {
				warnings = shapeBuffer(e, para, page.Number, warnings)
			}
			for _, comp := range para.Compositions {
				if comp == nil || comp.SameStyleUnicodeChars == nil {
					continue
				}
				chars := comp.SameStyleUnicodeChars
				if chars.Unicode == "" {
					continue
				}
				if !arabicTag && !script.ContainsArabic(chars.Unicode) {
					continue
				}
				warnings = shapeBuffer(e, chars, page.Number, warnings)
			}
		}
	}
	return warnings
}

// ShapeDocument is ShapeDocumentWith using the process-wide engine.
func ShapeDocument(doc *model.Document, langCode string) []Warning {
	return ShapeDocumentWith(shaping.Default(), doc, langCode)
}

// shapeBuffer shapes one unicode buffer in place, appending a warning on
// fallback and writing back only on change.
func shapeBuffer(e *shaping.Engine, holder shaping.UnicodeHolder, page int, warnings []Warning) []Warning {
	original := holder.UnicodeText()
	res := e.Shape(original)
	if res.Fallback {
		warnings = append(warnings, Warning{
			Category: WarningShapingFallback,
			Page:     page,
			Message:  fmt.Sprintf("text %q left unshaped: %v", original, res.Err),
		})
	}
	if res.Text != original {
		holder.SetUnicodeText(res.Text)
	}
	return warnings
}
