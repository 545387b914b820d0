package doctranslator

import (
	"errors"
	"strings"
	"testing"

	"github.com/Taha493/doc-translator/model"
	"github.com/Taha493/doc-translator/shaping"
)

func testEngine() *shaping.Engine {
	return shaping.New(shaping.DefaultConfig())
}

func TestApplyToText(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name      string
		text      string
		langCode  string
		unchanged bool
	}{
		{"arabic text with arabic pair tag", "السلام", "en-ar", false},
		{"arabic text with plain tag", "السلام", "ar", false},
		{"arabic text with english tag", "السلام", "en", true},
		{"latin text with arabic tag", "Hello World", "ar", true},
		{"empty text with arabic tag", "", "ar", true},
		{"digits with arabic tag", "14/8/2013", "ar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyToText(e, tt.text, tt.langCode)
			if got == "" && tt.text != "" {
				t.Fatalf("ApplyToText(%q, %q) returned empty output", tt.text, tt.langCode)
			}
			if tt.unchanged && got != tt.text {
				t.Errorf("ApplyToText(%q, %q) = %q, want unchanged", tt.text, tt.langCode, got)
			}
			if !tt.unchanged && got == tt.text {
				t.Errorf("ApplyToText(%q, %q) returned input unchanged, want shaped", tt.text, tt.langCode)
			}
		})
	}
}

func TestApplyToParagraph(t *testing.T) {
	e := testEngine()

	t.Run("shapes arabic paragraph", func(t *testing.T) {
		p := &model.Paragraph{Unicode: "السلام"}
		ApplyToParagraph(e, p, "en-ar")
		if p.Unicode == "السلام" {
			t.Error("paragraph buffer should have been rewritten")
		}
		if p.Unicode == "" {
			t.Error("paragraph buffer should not be emptied")
		}
	})

	t.Run("language gate ignores arabic content", func(t *testing.T) {
		p := &model.Paragraph{Unicode: "السلام"}
		ApplyToParagraph(e, p, "en")
		if p.Unicode != "السلام" {
			t.Errorf("buffer changed to %q despite non-Arabic tag", p.Unicode)
		}
	})

	t.Run("empty buffer is a no-op", func(t *testing.T) {
		p := &model.Paragraph{}
		ApplyToParagraph(e, p, "ar")
		if p.Unicode != "" {
			t.Errorf("buffer = %q, want empty", p.Unicode)
		}
	})

	t.Run("second application is a no-op", func(t *testing.T) {
		p := &model.Paragraph{Unicode: "السلام عليكم"}
		ApplyToParagraph(e, p, "ar")
		once := p.Unicode
		ApplyToParagraph(e, p, "ar")
		if p.Unicode != once {
			t.Errorf("re-applying changed %q to %q", once, p.Unicode)
		}
	})
}

func TestApplyToComposition(t *testing.T) {
	e := testEngine()

	t.Run("script detection overrides missing tag", func(t *testing.T) {
		c := &model.Composition{
			SameStyleUnicodeChars: &model.SameStyleUnicodeChars{Unicode: "بيان صحفي"},
		}
		ApplyToComposition(e, c, "en")
		if c.SameStyleUnicodeChars.Unicode == "بيان صحفي" {
			t.Error("composition with Arabic content should be shaped even under a wrong tag")
		}
	})

	t.Run("latin content with latin tag untouched", func(t *testing.T) {
		c := &model.Composition{
			SameStyleUnicodeChars: &model.SameStyleUnicodeChars{Unicode: "press release"},
		}
		ApplyToComposition(e, c, "en")
		if c.SameStyleUnicodeChars.Unicode != "press release" {
			t.Errorf("buffer = %q, want unchanged", c.SameStyleUnicodeChars.Unicode)
		}
	})

	t.Run("missing unicode run is a no-op", func(t *testing.T) {
		ApplyToComposition(e, &model.Composition{}, "ar")
		ApplyToComposition(e, nil, "ar")
	})
}

func TestShapeDocumentWith(t *testing.T) {
	e := testEngine()

	doc := model.NewDocument()
	page := model.NewPage(1)
	arabic := &model.Paragraph{
		Unicode: "السلام",
		Compositions: []*model.Composition{
			{SameStyleUnicodeChars: &model.SameStyleUnicodeChars{Unicode: "السلام"}},
		},
	}
	latin := &model.Paragraph{Unicode: "Hello World"}
	vertical := &model.Paragraph{Unicode: "السلام", Vertical: true}
	page.AddParagraph(arabic)
	page.AddParagraph(latin)
	page.AddParagraph(vertical)
	doc.AddPage(page)

	warnings := ShapeDocumentWith(e, doc, "en-ar")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %s", FormatWarnings(warnings))
	}
	if arabic.Unicode == "السلام" {
		t.Error("arabic paragraph should have been shaped")
	}
	if arabic.Compositions[0].SameStyleUnicodeChars.Unicode == "السلام" {
		t.Error("arabic composition should have been shaped")
	}
	if latin.Unicode != "Hello World" {
		t.Errorf("latin paragraph = %q, want unchanged", latin.Unicode)
	}
	if vertical.Unicode != "السلام" {
		t.Errorf("vertical paragraph = %q, want unchanged", vertical.Unicode)
	}
}

func TestShapeDocumentCollectsFallbackWarnings(t *testing.T) {
	boom := errors.New("synthetic failure")
	e := shaping.NewWith(shaping.DefaultConfig(), failingReshaper{err: boom}, identityReorderer{})

	doc := model.NewDocument()
	page := model.NewPage(3)
	page.AddParagraph(&model.Paragraph{Unicode: "السلام"})
	doc.AddPage(page)

	warnings := ShapeDocumentWith(e, doc, "ar")
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	w := warnings[0]
	if w.Category != WarningShapingFallback {
		t.Errorf("category = %v, want %v", w.Category, WarningShapingFallback)
	}
	if w.Page != 3 {
		t.Errorf("page = %d, want 3", w.Page)
	}
	if !strings.Contains(w.Message, "synthetic failure") {
		t.Errorf("message %q should carry the underlying error", w.Message)
	}
	if doc.Pages[0].Paragraphs[0].Unicode != "السلام" {
		t.Error("failed run must keep its original text")
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
	warnings := []Warning{
		{Category: WarningShapingFallback, Page: 2, Message: "first"},
		{Category: WarningShapingFallback, Message: "second"},
	}
	got := FormatWarnings(warnings)
	if !strings.Contains(got, "page 2: first") || !strings.Contains(got, "second") {
		t.Errorf("FormatWarnings() = %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected one warning per line, got %q", got)
	}
}

// failingReshaper triggers the engine's fallback path.
type failingReshaper struct {
	err error
}

func (f failingReshaper) Reshape(string) (string, error) {
	return "", f.err
}

// identityReorderer satisfies shaping.Reorderer without reordering.
type identityReorderer struct{}

func (identityReorderer) Reorder(text string) (string, error) {
	return text, nil
}
