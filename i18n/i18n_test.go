package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", "ar"},
		{"ar", "ar"},
		{"fr", "fr"},
		{"en", "en"},
		{"FR-fr", "fr"},
		{"en-US,en;q=0.9", "en"},
		{"de-DE,fr;q=0.8", "fr"},
		{"de-DE,ja;q=0.8", "ar"},
		{" fr ;q=0.5", "fr"},
	}
	for _, c := range cases {
		if got := DetectLanguage(c.header); got != c.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestT_FallsBackToArabic(t *testing.T) {
	if got := T("ja", "auth.required"); got != messages["ar"]["auth.required"] {
		t.Errorf("unsupported language should fall back to Arabic, got %q", got)
	}
}

func TestT_UnknownCodeReturnsCode(t *testing.T) {
	if got := T("fr", "no.such.code"); got != "no.such.code" {
		t.Errorf("unknown code should be returned verbatim, got %q", got)
	}
}

func TestT_AllLanguagesCoverAllCodes(t *testing.T) {
	for code := range messages["ar"] {
		for _, lang := range []string{"fr", "en"} {
			if _, ok := messages[lang][code]; !ok {
				t.Errorf("language %q is missing message %q", lang, code)
			}
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("ar", "Cafe", "مقهى", "Café"); got != "مقهى" {
		t.Errorf("Display ar = %q", got)
	}
	if got := Display("fr", "Cafe", "مقهى", "Café"); got != "Café" {
		t.Errorf("Display fr = %q", got)
	}
	if got := Display("ar", "Cafe", "", "Café"); got != "Cafe" {
		t.Errorf("Display should fall back to the base name, got %q", got)
	}
}
