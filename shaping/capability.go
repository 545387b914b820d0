package shaping

// Reshaper is the external contextual-shaping capability: it substitutes
// each Arabic base letter with the joined, isolated, initial, medial or
// final presentation form demanded by its neighbors, honoring the engine's
// [Config]. Input is normalized, logical-order text.
type Reshaper interface {
	Reshape(text string) (string, error)
}

// Reorderer is the external bidi capability: it converts shaped
// logical-order text into the storage order that renders correctly under
// left-to-right glyph placement. Implementations are constructed with a
// fixed base paragraph direction; the engine always uses a right-to-left
// one, since any run that passed the Arabic gate is treated as an Arabic
// paragraph even when it mixes in Latin or digits.
type Reorderer interface {
	Reorder(text string) (string, error)
}

// UnicodeHolder is the capability the integration adapters need from
// document-model objects: a gettable, settable unicode text buffer.
// model.Paragraph and model.SameStyleUnicodeChars implement it.
type UnicodeHolder interface {
	UnicodeText() string
	SetUnicodeText(string)
}
