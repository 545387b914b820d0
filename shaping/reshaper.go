package shaping

import (
	"strings"

	"github.com/abdullahdiaa/garabic"
)

// rialWord is the letter sequence reh-yeh-alef-lam ("riyal").
const rialWord = "ريال"

// rialSign is U+FDFC RIAL SIGN, the single-glyph ligature for rialWord.
const rialSign = "﷼"

// garabicReshaper is the default Reshaper, backed by the garabic library.
// garabic always applies the mandatory lam-alef ligatures and contextual
// forms; of the optional behaviors in Config it can honor harakat removal
// and the Rial-sign substitution. UseUnshapedInsteadOfIsolated matches
// garabic's fixed behavior when false (the default) and is otherwise
// ignored, as is ShapesFile.
type garabicReshaper struct {
	cfg Config
}

func newGarabicReshaper(cfg Config) *garabicReshaper {
	return &garabicReshaper{cfg: cfg}
}

// Reshape substitutes contextual presentation forms for the Arabic letters
// in text. The input is expected in logical order and NFKC-normalized.
func (g *garabicReshaper) Reshape(text string) (string, error) {
	if g.cfg.DeleteHarakat {
		text = garabic.RemoveHarakat(text)
	}
	if g.cfg.SupportLigatures && g.cfg.RialSign {
		// Substitute on base letters, before they become presentation forms.
		text = strings.ReplaceAll(text, rialWord, rialSign)
	}
	return garabic.Shape(text), nil
}
