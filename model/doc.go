// Package model defines the intermediate document representation consumed
// by the translation pipeline's typesetting stages.
//
// The model is a thin, mutable tree: a [Document] holds [Page]s, a page
// holds translated [Paragraph]s, and a paragraph holds style-run
// [Composition]s. Text lives in unicode buffers owned by the paragraph and
// by each composition's [SameStyleUnicodeChars]; downstream stages (Arabic
// shaping, character placement) read and rewrite those buffers in place.
//
// Layout geometry, font resources and page rendering are deliberately not
// modeled here; they belong to the surrounding typesetter.
package model
