package translator

import (
	"strings"
	"testing"
)

func TestNew_KnownServices(t *testing.T) {
	for _, name := range Names() {
		svc, err := New(name, Options{})
		if err != nil {
			t.Fatalf("New(%q) unexpected error: %v", name, err)
		}
		if svc.Name() != name {
			t.Errorf("New(%q) returned service %q", name, svc.Name())
		}
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	svc, err := New(" MyMemory ", Options{MyMemoryEmail: "me@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Name() != "mymemory" {
		t.Errorf("expected mymemory, got %q", svc.Name())
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("babelfish", Options{})
	if err == nil {
		t.Fatal("expected error for unknown service")
	}
	if !strings.Contains(err.Error(), "gtranslate") {
		t.Errorf("expected available services in error, got %q", err.Error())
	}
}

func TestNames_Sorted(t *testing.T) {
	got := strings.Join(Names(), ",")
	if got != "google,gtranslate,mymemory,systran" {
		t.Errorf("unexpected names %q", got)
	}
}
