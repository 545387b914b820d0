package shaping

// Config holds the options passed to the contextual reshaper. It is fixed
// at engine construction; all shape calls through one engine observe the
// same configuration.
type Config struct {
	// DeleteHarakat strips vowel diacritics (harakat) before shaping.
	DeleteHarakat bool

	// SupportLigatures enables optional ligature composition beyond the
	// mandatory lam-alef forms.
	SupportLigatures bool

	// RialSign substitutes the word "ريال" with the Rial currency sign
	// U+FDFC. Only effective when SupportLigatures is set.
	RialSign bool

	// UseUnshapedInsteadOfIsolated leaves letters without a contextual
	// form as plain base letters rather than isolated presentation forms.
	UseUnshapedInsteadOfIsolated bool

	// ShapesFile optionally points to an alternative shaping table for
	// reshaper implementations that support one. Empty means built-in.
	ShapesFile string
}

// DefaultConfig returns the configuration used by the process-wide engine:
// diacritics preserved, ligatures and the Rial sign enabled, contextual
// forms preferred over unshaped letters.
func DefaultConfig() Config {
	return Config{
		DeleteHarakat:                false,
		SupportLigatures:             true,
		RialSign:                     true,
		UseUnshapedInsteadOfIsolated: false,
		ShapesFile:                   "",
	}
}
