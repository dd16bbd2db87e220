package answers

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestGetSubstitutesWildcards(t *testing.T) {
	store := NewStore(zap.NewNop())
	got := store.Get("en", KeyDeviceSet, "light", "kitchen", "50")
	if strings.Contains(got, "<1>") || strings.Contains(got, "<2>") || strings.Contains(got, "<3>") {
		t.Fatalf("wildcards must be substituted, got %q", got)
	}
	for _, want := range []string{"light", "kitchen", "50"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in answer %q", want, got)
		}
	}
}

func TestGetGermanVariant(t *testing.T) {
	store := NewStore(zap.NewNop())
	got := store.Get("de", KeyAskDevice)
	if got == "" || strings.Contains(got, "device") {
		t.Fatalf("expected German question, got %q", got)
	}
}

func TestGetFallsBackToEnglish(t *testing.T) {
	store := NewStore(zap.NewNop())
	got := store.Get("fr", KeyOk)
	if got == "" || got == KeyOk {
		t.Fatalf("unknown language must fall back to English, got %q", got)
	}
}

func TestGetUnknownKeyReturnsKey(t *testing.T) {
	store := NewStore(zap.NewNop())
	if got := store.Get("en", "nonsense_9z"); got != "nonsense_9z" {
		t.Fatalf("unknown key must surface the key itself, got %q", got)
	}
}

func TestCleanStripsMarkup(t *testing.T) {
	got := Clean("<b>Sunny</b>, probably <i>tomorrow</i>")
	if got != "Sunny, probably tomorrow" {
		t.Fatalf("expected stripped text, got %q", got)
	}
	if got := Clean("plain text"); got != "plain text" {
		t.Fatalf("plain text must pass through, got %q", got)
	}
}
