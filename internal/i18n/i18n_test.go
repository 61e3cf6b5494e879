package i18n

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pt-BR", "pt"},
		{"pt", "pt"},
		{"es-ES", "es"},
		{"ru-RU", "ru"},
		{"en-US", "en"},
		{"de-DE", "en"},
		{"", "en"},
	}
	for _, test := range tests {
		if got := normalizeLanguage(test.in); got != test.want {
			t.Errorf("normalizeLanguage(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestTranslationLookup(t *testing.T) {
	previous := lang
	defer func() { lang = previous }()

	lang = "es"
	if got := T("Start"); got != "Iniciar" {
		t.Errorf("T(Start) = %q, want %q", got, "Iniciar")
	}

	lang = "en"
	if got := T("Start"); got != "Start" {
		t.Errorf("T(Start) = %q, want key itself in english", got)
	}

	lang = "ru"
	if got := T("no such key"); got != "no such key" {
		t.Errorf("T(unknown) = %q, want key itself", got)
	}
}

func TestAllKeysCoverAllLanguages(t *testing.T) {
	for key, byLang := range translations {
		for _, code := range []string{"pt", "es", "ru"} {
			if byLang[code] == "" {
				t.Errorf("key %q missing %s translation", key, code)
			}
		}
	}
}
