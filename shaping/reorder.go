package shaping

import (
	gobidi "github.com/lutzky/go-bidi"
	"golang.org/x/text/unicode/bidi"
)

// rtlReorderer is the default Reorderer. It runs the Unicode Bidirectional
// Algorithm via the go-bidi port with the base paragraph direction forced
// to right-to-left, so neutral runs (digits, Latin fragments, punctuation)
// resolve as they would inside an Arabic paragraph.
type rtlReorderer struct {
	displayer gobidi.Displayer
}

func newRTLReorderer() *rtlReorderer {
	return &rtlReorderer{
		displayer: gobidi.Displayer{BaseDir: bidi.RightToLeft},
	}
}

// Reorder converts shaped logical-order text to display order.
func (r *rtlReorderer) Reorder(text string) (string, error) {
	return r.displayer.Display(text)
}
