// Package script provides script and language-tag detection for the
// translation pipeline's Arabic shaping stage.
//
// Two independent signals decide whether a text run needs right-to-left
// contextual shaping:
//
//   - Language tags: [IsArabicLanguageCode] pattern-matches a tag such as
//     "ar", "en-ar" or "AR" for an Arabic subtag. Tags in translated
//     documents are frequently missing or wrong, so this is a syntactic
//     check only; no locale database is consulted.
//   - Code points: [ContainsArabic] scans for runes in the Arabic block
//     (U+0600–U+06FF) or the Arabic Presentation Forms blocks. Range
//     scanning alone mis-fires on shared punctuation, so callers combine
//     both signals for a conservative but practical trigger.
//
// The package also carries a lightweight [Direction] heuristic used by
// diagnostic tooling to report the dominant writing direction of a run.
package script
