package profile

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/sharelink/internal/deeplink"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// Map converts a profile file into a validated domain profile.
// Unset message texts get their defaults.
func Map(f *File) (domain.EventProfile, error) {
	if f == nil {
		return domain.EventProfile{}, fmt.Errorf("%w: empty file", domain.ErrInvalidProfile)
	}

	links := make([]domain.NamedLink, 0, len(f.Links))
	for _, l := range f.Links {
		links = append(links, domain.NamedLink{
			Name: strings.TrimSpace(l.Name),
			URL:  strings.TrimSpace(l.URL),
		})
	}

	p := domain.EventProfile{
		Name:            strings.TrimSpace(f.Event.Name),
		Title:           strings.TrimSpace(f.Event.Title),
		Date:            strings.TrimSpace(f.Event.Date),
		Time:            strings.TrimSpace(f.Event.Time),
		Location:        strings.TrimSpace(f.Event.Location),
		Capacity:        strings.TrimSpace(f.Event.Capacity),
		Phone:           strings.TrimSpace(f.Event.Phone),
		Links:           links,
		Emoji:           f.Messages.Emoji,
		CallToAction:    f.Messages.CallToAction,
		ContactGreeting: f.Messages.ContactGreeting,
		ErrorMessage:    f.Messages.ErrorMessage,
	}.WithDefaults()

	if err := p.Validate(); err != nil {
		return domain.EventProfile{}, err
	}
	if !deeplink.ValidPhone(p.Phone) {
		return domain.EventProfile{}, fmt.Errorf("%w: phone %q must have 10 to 15 digits",
			domain.ErrInvalidProfile, p.Phone)
	}
	return p, nil
}

// FromProfile is the inverse of Map, used to print the built-in profile.
func FromProfile(p domain.EventProfile) *File {
	f := &File{
		Event: EventSection{
			Name:     p.Name,
			Title:    p.Title,
			Date:     p.Date,
			Time:     p.Time,
			Location: p.Location,
			Capacity: p.Capacity,
			Phone:    p.Phone,
		},
		Messages: MessagesSection{
			Emoji:           p.Emoji,
			CallToAction:    p.CallToAction,
			ContactGreeting: p.ContactGreeting,
			ErrorMessage:    p.ErrorMessage,
		},
	}
	for _, l := range p.Links {
		f.Links = append(f.Links, LinkEntry{Name: l.Name, URL: l.URL})
	}
	return f
}
