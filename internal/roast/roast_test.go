package roast

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeGenerator struct {
	text   string
	err    error
	block  bool
	prompt string
	calls  int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func TestRoastFallbacks(t *testing.T) {
	is := MessagesFor(LangIcelandic)

	tests := []struct {
		name string
		gen  Generator
		want string
	}{
		{"missing credential", nil, is.MissingKey},
		{"call failure", &fakeGenerator{err: errors.New("quota exceeded")}, is.Failed},
		{"empty response", &fakeGenerator{text: "  \n"}, is.Empty},
		{"success", &fakeGenerator{text: "  Mjólkin vann.\n"}, "Mjólkin vann."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.gen, LangIcelandic, nil)
			if got := s.Roast(context.Background(), 120, 3); got != tt.want {
				t.Errorf("Roast() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestRoastFallbackStrings(t *testing.T) {
	is := MessagesFor(LangIcelandic)
	if is.MissingKey != "Ekki gráta yfir helltri mjólk. (Vantar API lykil fyrir alvöru roast!)" {
		t.Errorf("unexpected missing-key line %q", is.MissingKey)
	}
	if is.Failed != "Barþjónninn er of upptekinn við að dæma pöntunina þína." {
		t.Errorf("unexpected failure line %q", is.Failed)
	}
	if is.Empty != "Þú hefur verið afkaffínvædd/ur." {
		t.Errorf("unexpected empty line %q", is.Empty)
	}
}

func TestRoastTimeout(t *testing.T) {
	gen := &fakeGenerator{block: true}
	s := NewService(gen, LangEnglish, nil)
	s.SetTimeout(10 * time.Millisecond)

	if got := s.Roast(context.Background(), 1, 0); got != MessagesFor(LangEnglish).Failed {
		t.Errorf("Roast() = %q, expected failure line after timeout", got)
	}
}

func TestRoastPromptCarriesRun(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	s := NewService(gen, LangEnglish, nil)
	s.Roast(context.Background(), 4321, 17)

	if gen.calls != 1 {
		t.Errorf("Generate called %d times, expected 1", gen.calls)
	}
	if !strings.Contains(gen.prompt, "4321") || !strings.Contains(gen.prompt, "17") {
		t.Errorf("prompt missing run numbers: %q", gen.prompt)
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in      string
		want    Lang
		wantErr bool
	}{
		{"", LangIcelandic, false},
		{"is", LangIcelandic, false},
		{"EN", LangEnglish, false},
		{"de", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLang(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLang(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLang(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")
	os.Unsetenv("API_KEY")

	key, err := LoadAPIKey(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadAPIKey() with missing file failed: %v", err)
	}
	if key != "" {
		t.Errorf("expected no key, got %q", key)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("API_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	key, err = LoadAPIKey(envFile)
	if err != nil {
		t.Fatalf("LoadAPIKey() failed: %v", err)
	}
	if key != "from-file" {
		t.Errorf("key = %q, expected from-file", key)
	}

	t.Setenv("GEMINI_API_KEY", "preferred")
	if key, _ := LoadAPIKey(); key != "preferred" {
		t.Errorf("key = %q, expected GEMINI_API_KEY to win", key)
	}
}

func TestFromEnvWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	s := FromEnv(context.Background(), LangIcelandic, nil)
	if s.Available() {
		t.Error("service should not be available without a key")
	}
	if got := s.Roast(context.Background(), 0, 0); got != MessagesFor(LangIcelandic).MissingKey {
		t.Errorf("Roast() = %q, expected missing-key line", got)
	}
}
