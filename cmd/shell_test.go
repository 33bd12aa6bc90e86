package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valpere/lingobuddy/internal/language"
	"github.com/valpere/lingobuddy/internal/session"
	"github.com/valpere/lingobuddy/internal/translator"
)

type echoService struct {
	calls int
	err   error
}

func (s *echoService) Name() string { return "echo" }

func (s *echoService) Translate(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	s.calls++
	if s.err != nil {
		return &translator.ServiceResult{ServiceName: "echo", Error: s.err.Error()}, s.err
	}
	return &translator.ServiceResult{
		ServiceName:    "echo",
		TranslatedText: strings.ToUpper(req.Text) + "@" + req.TargetLang,
	}, nil
}

func (s *echoService) IsAvailable(ctx context.Context) error { return nil }

func (s *echoService) SupportedLanguages(ctx context.Context) ([]string, error) { return nil, nil }

func runShell(t *testing.T, svc translator.Service, input string) (*shell, string) {
	t.Helper()

	var out bytes.Buffer
	sh := newShell(session.New(svc), strings.NewReader(input), &out)
	sh.copy = func(string) error { return errors.New("no clipboard") }

	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("shell failed: %v", err)
	}
	return sh, out.String()
}

func TestShell_TranslatesLines(t *testing.T) {
	svc := &echoService{}
	sh, out := runShell(t, svc, "Hello\n:to de\nWorld\n:history\n")

	if !strings.Contains(out, "Translation: HELLO@fr") {
		t.Errorf("expected first translation in output, got %q", out)
	}
	if !strings.Contains(out, "Translation: WORLD@de") {
		t.Errorf("expected second translation in output, got %q", out)
	}
	if !strings.Contains(out, "  1  hello [en] => HELLO@fr [fr]") {
		t.Errorf("expected numbered history, got %q", out)
	}

	history := sh.ctrl.History()
	if len(history) != 2 || history[1] != "world [en] => WORLD@de [de]" {
		t.Errorf("unexpected history %q", history)
	}
}

func TestShell_InvalidInput(t *testing.T) {
	svc := &echoService{}
	_, out := runShell(t, svc, "   \n:to en\nHello\n")

	if strings.Count(out, session.InvalidInputMessage) != 2 {
		t.Errorf("expected two invalid input messages, got %q", out)
	}
	if svc.calls != 0 {
		t.Errorf("expected no provider call, got %d", svc.calls)
	}
}

func TestShell_ProviderErrorContinues(t *testing.T) {
	svc := &echoService{err: errors.New("service unavailable")}
	sh, out := runShell(t, svc, "Hello\n:help\n")

	if !strings.Contains(out, "service unavailable") {
		t.Errorf("expected provider message, got %q", out)
	}
	if !strings.Contains(out, ":swap") {
		t.Error("session should continue after a provider error")
	}
	if len(sh.ctrl.History()) != 0 {
		t.Error("failed request must not be recorded")
	}
}

func TestShell_FromNameAndSwap(t *testing.T) {
	sh, _ := runShell(t, &echoService{}, ":from German\n:swap\n")

	if sh.src != language.Code("fr") || sh.dst != language.Code("de") {
		t.Errorf("expected fr -> de, got %s -> %s", sh.src, sh.dst)
	}
}

func TestShell_UnknownLanguageKeepsSelection(t *testing.T) {
	sh, out := runShell(t, &echoService{}, ":to klingon\n")

	if sh.dst != language.Code("fr") {
		t.Errorf("target should stay fr, got %s", sh.dst)
	}
	if !strings.Contains(out, `Unknown language "klingon"`) {
		t.Errorf("expected unknown language message, got %q", out)
	}
}

func TestShell_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	_, out := runShell(t, &echoService{}, ":save "+path+"\nHello\n:save "+path+"\n")

	if !strings.Contains(out, "Nothing to save yet.") {
		t.Errorf("expected nothing-to-save message, got %q", out)
	}
	if !strings.Contains(out, "Translation saved successfully.") {
		t.Errorf("expected success message, got %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "HELLO@fr" {
		t.Errorf("expected plain translation in file, got %q", data)
	}
}

func TestShell_CopyUsesPlainText(t *testing.T) {
	var copied string
	var out bytes.Buffer
	sh := newShell(session.New(&echoService{}), strings.NewReader("Hello\n:copy\n"), &out)
	sh.copy = func(s string) error { copied = s; return nil }

	if err := sh.run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if copied != "HELLO@fr" {
		t.Errorf("expected 'HELLO@fr' copied, got %q", copied)
	}
}

func TestShell_QuitStopsReading(t *testing.T) {
	svc := &echoService{}
	_, out := runShell(t, svc, ":quit\nHello\n")

	if svc.calls != 0 {
		t.Errorf("expected no translation after :quit, got %d calls", svc.calls)
	}
	if strings.Contains(out, "Translation:") {
		t.Errorf("unexpected translation output %q", out)
	}
}

func TestShell_UnknownCommand(t *testing.T) {
	_, out := runShell(t, &echoService{}, ":frobnicate\n")

	if !strings.Contains(out, "Unknown command :frobnicate") {
		t.Errorf("expected unknown command message, got %q", out)
	}
}

func TestResolveLang(t *testing.T) {
	catalog := language.Default()

	tests := []struct {
		in   string
		want language.Code
	}{
		{"fr", "fr"},
		{"French", "fr"},
		{" EN ", "en"},
		{"Klingon", "klingon"},
	}
	for _, tt := range tests {
		if got := resolveLang(catalog, tt.in); got != tt.want {
			t.Errorf("resolveLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintLanguages(t *testing.T) {
	var buf bytes.Buffer
	if err := printLanguages(&buf, language.Default()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != language.Default().Len()+1 {
		t.Errorf("expected header plus %d rows, got %d lines", language.Default().Len(), len(lines))
	}
	if !strings.HasPrefix(lines[0], "CODE") {
		t.Errorf("expected header row, got %q", lines[0])
	}
}
