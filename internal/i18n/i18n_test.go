package i18n

import (
	"context"
	"testing"
)

func initLang(t *testing.T, lang string) context.Context {
	t.Helper()
	if err := Init(lang); err != nil {
		t.Fatalf("Init(%q): %v", lang, err)
	}
	loc := NewLocalizer(lang)
	return WithLocalizer(context.Background(), loc)
}

func TestTranslateEnglish(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "AppTitle")
	if got != "Exam Paper Portal" {
		t.Errorf("T(AppTitle) = %q, want 'Exam Paper Portal'", got)
	}

	got = T(ctx, "LoginError")
	if got != "Invalid credentials" {
		t.Errorf("T(LoginError) = %q, want 'Invalid credentials'", got)
	}

	got = T(ctx, "RegisterPasswordTooShort")
	if got != "Password must be at least 6 characters!" {
		t.Errorf("T(RegisterPasswordTooShort) = %q", got)
	}
}

func TestTemplateDataTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got := Td(ctx, "QuizScore", map[string]any{"Score": 4, "Total": 5})
	if got != "You scored 4 out of 5." {
		t.Errorf("Td(QuizScore) = %q, want 'You scored 4 out of 5.'", got)
	}
}

func TestMissingKey(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "NonExistentKey")
	if got != "NonExistentKey" {
		t.Errorf("T(NonExistentKey) = %q, want 'NonExistentKey'", got)
	}
}

func TestMissingLocalizerFallsBack(t *testing.T) {
	initLang(t, "en")

	// A bare context (no localizer attached) still translates.
	got := T(context.Background(), "AppTitle")
	if got != "Exam Paper Portal" {
		t.Errorf("T without localizer = %q, want 'Exam Paper Portal'", got)
	}
}
