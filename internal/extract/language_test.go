package extract

import "testing"

func TestExtractLanguages(t *testing.T) {
	t.Parallel()

	section := `Dutch - Native speaker
English - C1
German - basic knowledge
French
`

	langs := extractLanguages(section)
	byName := make(map[string]int)
	for i, lang := range langs {
		byName[lang.Language] = i
	}

	dutch, ok := byName["Dutch"]
	if !ok {
		t.Fatalf("Dutch not found in %v", byName)
	}
	if !langs[dutch].IsNative {
		t.Fatal("Dutch must be flagged native")
	}
	for _, level := range []string{
		langs[dutch].Listening, langs[dutch].Reading,
		langs[dutch].Speaking, langs[dutch].Writing,
	} {
		if level != "C2" {
			t.Fatalf("native language must carry C2 on all axes, got %q", level)
		}
	}

	english := langs[byName["English"]]
	if english.IsNative {
		t.Fatal("English wrongly flagged native")
	}
	if english.Listening != "C1" {
		t.Fatalf("expected CEFR token C1, got %q", english.Listening)
	}

	german := langs[byName["German"]]
	if german.Listening != "A2" {
		t.Fatalf("expected basic to map to A2, got %q", german.Listening)
	}

	french := langs[byName["French"]]
	if french.Listening != "B1" {
		t.Fatalf("language without level must default to B1, got %q", french.Listening)
	}
}

func TestExtractLanguagesDutchNames(t *testing.T) {
	t.Parallel()

	langs := extractLanguages("Engels - vloeiend\nDuits - goed\nFrans - redelijk\n")

	levels := make(map[string]string)
	for _, lang := range langs {
		levels[lang.Language] = lang.Listening
	}

	if levels["Engels"] != "C2" {
		t.Fatalf("vloeiend must map to C2, got %v", levels)
	}
	if levels["Duits"] != "B1" {
		t.Fatalf("goed must map to B1, got %v", levels)
	}
	if levels["Frans"] != "B1" {
		t.Fatalf("unrecognized proficiency prose must default to B1, got %v", levels)
	}
}

func TestExtractLanguagesRequiresWordBoundary(t *testing.T) {
	t.Parallel()

	// "Polish" contains no roster language at a word boundary.
	langs := extractLanguages("Polish - fluent")
	for _, lang := range langs {
		if lang.Language == "Spanish" {
			t.Fatal("substring match must not produce a language")
		}
	}
}
