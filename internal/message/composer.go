package message

import (
	"strings"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// Line labels of the share message.
const (
	LabelDate     = "📅 Date: "
	LabelTime     = "⏰ Time: "
	LabelLocation = "📍 Location: "
	LabelCapacity = "👥 Capacity: "
	LabelContact  = "📞 Contact: "
	FollowHeader  = "🔗 Follow us for updates:"
)

// ShareMessage is the text sent through the share link.
type ShareMessage struct {
	lines    []string
	fallback bool
}

// Lines returns a copy of the message lines.
func (m ShareMessage) Lines() []string {
	return append([]string(nil), m.lines...)
}

// String joins the lines with newlines.
func (m ShareMessage) String() string {
	return strings.Join(m.lines, "\n")
}

// Fallback reports whether the minimal message was substituted.
func (m ShareMessage) Fallback() bool {
	return m.fallback
}

// Compose renders the share message for p.
// It never fails: an unrenderable profile yields the two-line fallback.
func Compose(p domain.EventProfile) ShareMessage {
	lines, err := build(p)
	if err != nil {
		return Fallback(p)
	}
	return ShareMessage{lines: lines}
}

// Fallback is the minimal message used when composition fails.
func Fallback(p domain.EventProfile) ShareMessage {
	return ShareMessage{
		lines: []string{
			"Join " + p.DisplayName() + "!",
			"Contact: " + p.Phone,
		},
		fallback: true,
	}
}

func build(p domain.EventProfile) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lines := make([]string, 0, 12+len(p.Links))
	lines = append(lines,
		"Join the "+p.Title+" "+p.Emoji,
		"",
		LabelDate+p.Date,
		LabelTime+p.Time,
		LabelLocation+p.Location,
		LabelCapacity+p.Capacity,
		"",
		LabelContact+p.Phone,
		"",
	)

	if len(p.Links) > 0 {
		lines = append(lines, FollowHeader)
		for _, l := range p.Links {
			lines = append(lines, l.Name+": "+l.URL)
		}
		lines = append(lines, "")
	}

	lines = append(lines, p.CallToAction)
	return lines, nil
}
