package shaping

import "golang.org/x/text/unicode/norm"

// Normalize applies Unicode compatibility composition (NFKC) to s.
//
// Some translation backends emit Arabic in presentation-form code points
// (U+FB50–U+FDFF, U+FE70–U+FEFF) instead of logical base letters. Feeding
// presentation forms into the reshaper again produces doubly-shaped output,
// so the engine folds text back to base letters before every reshape. This
// is also what makes shaping idempotent: a second pass over already-shaped
// text normalizes to the same base letters and shapes to the same result.
func Normalize(s string) string {
	return norm.NFKC.String(s)
}
