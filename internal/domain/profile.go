package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile is returned when an EventProfile cannot be rendered.
var ErrInvalidProfile = errors.New("invalid event profile")

const (
	DefaultEmoji           = "🌊"
	DefaultCallToAction    = "Let's make a difference together! 💚"
	DefaultContactGreeting = "Hello! I want to participate in the event."
	DefaultErrorMessage    = "Unable to open WhatsApp. Please try again."
)

// NamedLink is an external link rendered in the "follow us" block.
// Example: {Name: "Instagram", URL: "https://www.instagram.com/riverrevive/"}
type NamedLink struct {
	Name string
	URL  string
}

// EventProfile is the static content of an event page.
//
// A profile is built once (at startup or on an explicit reload) and never
// mutated afterwards. Reloading produces a new value.
type EventProfile struct {
	// ─────────────────────────────
	// Event details
	// ─────────────────────────────

	// Name is the short organiser/event name.
	// Example: River Revive
	Name string

	// Title is the full event title.
	// Example: River Revive – Pune River Cleaning Camp
	Title string

	Date     string
	Time     string
	Location string
	Capacity string

	// Phone is the canonical contact number, E.164-like.
	// It may contain formatting: "+91 84120 11008".
	Phone string

	// Links are rendered in order.
	Links []NamedLink

	// ─────────────────────────────
	// Messages
	// ─────────────────────────────

	Emoji           string
	CallToAction    string
	ContactGreeting string
	ErrorMessage    string
}

// WithDefaults returns a copy of p with empty message fields filled in.
func (p EventProfile) WithDefaults() EventProfile {
	if p.Emoji == "" {
		p.Emoji = DefaultEmoji
	}
	if p.CallToAction == "" {
		p.CallToAction = DefaultCallToAction
	}
	if p.ContactGreeting == "" {
		p.ContactGreeting = DefaultContactGreeting
	}
	if p.ErrorMessage == "" {
		p.ErrorMessage = DefaultErrorMessage
	}
	p.Links = append([]NamedLink(nil), p.Links...)
	return p
}

// Validate reports every field that would render as an empty string.
func (p EventProfile) Validate() error {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}

	check("title", p.Title)
	check("date", p.Date)
	check("time", p.Time)
	check("location", p.Location)
	check("capacity", p.Capacity)
	check("phone", p.Phone)
	check("emoji", p.Emoji)
	check("call_to_action", p.CallToAction)
	for i, l := range p.Links {
		check(fmt.Sprintf("links[%d].name", i), l.Name)
		check(fmt.Sprintf("links[%d].url", i), l.URL)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: empty %s", ErrInvalidProfile, strings.Join(missing, ", "))
	}
	return nil
}

// DisplayName returns the best short name for fallback texts.
func (p EventProfile) DisplayName() string {
	switch {
	case strings.TrimSpace(p.Name) != "":
		return p.Name
	case strings.TrimSpace(p.Title) != "":
		return p.Title
	default:
		return "our event"
	}
}

// DefaultProfile is the River Revive camp, the most complete published revision.
func DefaultProfile() EventProfile {
	return EventProfile{
		Name:     "River Revive",
		Title:    "River Revive – Pune River Cleaning Camp",
		Date:     "14 November 2025",
		Time:     "9:00 AM",
		Location: "Bhide Bridge, Pune",
		Capacity: "Up to 100 participants",
		Phone:    "+91 84120 11008",
		Links: []NamedLink{
			{Name: "Instagram", URL: "https://www.instagram.com/riverrevive/"},
			{Name: "Facebook", URL: "https://www.facebook.com/share/1K8sMSbfWQ/"},
			{Name: "WhatsApp", URL: "https://chat.whatsapp.com/GNSfS7d4hxWEzAUlZtHUwr?mode=ems_wa_t"},
			{Name: "Official portal", URL: "https://puneriverrevival.com"},
		},
		Emoji:           DefaultEmoji,
		CallToAction:    DefaultCallToAction,
		ContactGreeting: "Hello River Revive team! I want to participate in the river cleaning camp.",
		ErrorMessage:    DefaultErrorMessage,
	}
}
