package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

const sampleYAML = `---
event:
  name: River Revive
  title: River Revive – Pune River Cleaning Camp
  date: 14 November 2025
  time: "9:00 AM"
  location: Bhide Bridge, Pune
  capacity: Up to 100 participants
  phone: "{{SHARELINK_VAR_PHONE}}"
links:
  - name: Instagram
    url: https://www.instagram.com/riverrevive/
  - name: WhatsApp
    url: https://chat.whatsapp.com/GNSfS7d4hxWEzAUlZtHUwr?mode=ems_wa_t
messages:
  contact_greeting: Hello River Revive team!
`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SHARELINK_VAR_PHONE", "+91 84120 11008")
	path := writeProfile(t, sampleYAML)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if p.Phone != "+91 84120 11008" {
		t.Errorf("Phone = %q, placeholder not expanded", p.Phone)
	}
	wantLinks := []domain.NamedLink{
		{Name: "Instagram", URL: "https://www.instagram.com/riverrevive/"},
		{Name: "WhatsApp", URL: "https://chat.whatsapp.com/GNSfS7d4hxWEzAUlZtHUwr?mode=ems_wa_t"},
	}
	if diff := cmp.Diff(wantLinks, p.Links); diff != "" {
		t.Errorf("Links mismatch (-want +got):\n%s", diff)
	}
	if p.ContactGreeting != "Hello River Revive team!" {
		t.Errorf("ContactGreeting = %q", p.ContactGreeting)
	}
	if p.Emoji != domain.DefaultEmoji || p.CallToAction != domain.DefaultCallToAction {
		t.Error("defaults not applied to unset messages")
	}
}

func TestLoadFileMissingPlaceholder(t *testing.T) {
	path := writeProfile(t, sampleYAML)

	_, err := LoadFile(path)
	if !errors.Is(err, domain.ErrInvalidProfile) {
		t.Errorf("LoadFile() error = %v, want ErrInvalidProfile for empty phone", err)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	if _, err := LoadFile("/nonexistent/path/profile.yaml"); err == nil {
		t.Error("LoadFile() with non-existent file should return error")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := writeProfile(t, "event: [unterminated")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() with malformed yaml should return error")
	}
}

func TestMapRejectsShortPhone(t *testing.T) {
	f := FromProfile(domain.DefaultProfile())
	f.Event.Phone = "12345"

	if _, err := Map(f); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Errorf("Map() error = %v, want ErrInvalidProfile", err)
	}
}

func TestMapNil(t *testing.T) {
	if _, err := Map(nil); err == nil {
		t.Error("Map(nil) should return error")
	}
}

func TestFromProfileRoundTrip(t *testing.T) {
	want := domain.DefaultProfile()

	data, err := yaml.Marshal(FromProfile(want))
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	f, err := NewLoader("").Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := Map(f)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandTemplateVariables(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "SHARELINK_VAR_CITY" {
			return "Pune", true
		}
		return "", false
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known variable", input: "location: {{SHARELINK_VAR_CITY}}", want: "location: Pune"},
		{name: "spaces inside braces", input: "{{ SHARELINK_VAR_CITY }}", want: "Pune"},
		{name: "unset variable", input: "x: {{SHARELINK_VAR_NOPE}}", want: "x: "},
		{name: "foreign prefix", input: "x: {{HOME}}", want: "x: "},
		{name: "no template variables", input: "plain text", want: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandTemplateVariables([]byte(tt.input), lookup))
			if got != tt.want {
				t.Errorf("expandTemplateVariables() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHolder(t *testing.T) {
	h := NewHolder(domain.DefaultProfile())
	first := h.Current()
	first.Title = "mutated copy"

	if h.Current().Title == "mutated copy" {
		t.Error("Current() returned shared state")
	}

	next := domain.DefaultProfile()
	next.Date = "15 November 2025"
	h.Store(next)
	if h.Current().Date != "15 November 2025" {
		t.Errorf("Current().Date = %q after Store", h.Current().Date)
	}

	var zero Holder
	if zero.Current().Title != domain.DefaultProfile().Title {
		t.Error("zero Holder should serve the default profile")
	}
}
