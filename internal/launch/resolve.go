package launch

import (
	"github.com/MrSnakeDoc/sharelink/internal/deeplink"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/message"
)

// Target is the link an action resolves to and the event it records.
type Target struct {
	Action domain.Action
	Link   domain.DeepLink
	Event  domain.AnalyticsEvent

	// Fallback reports that the share message fell back to the minimal
	// text; Problem holds the validation error that caused it.
	Fallback bool
	Problem  error
}

// Resolve builds the link for action from profile p. Share links pick their
// endpoint from userAgent; contact links ignore it. Unknown actions share.
func Resolve(links *deeplink.Builder, p domain.EventProfile, action domain.Action, userAgent string) Target {
	if action == domain.ActionContact {
		return Target{
			Action: domain.ActionContact,
			Link:   links.DirectLink(p.Phone, p.ContactGreeting),
			Event:  domain.ContactEvent,
		}
	}

	msg := message.Compose(p)
	t := Target{
		Action:   domain.ActionShare,
		Link:     links.ShareLinkFor(msg.String(), userAgent),
		Event:    domain.ShareEvent,
		Fallback: msg.Fallback(),
	}
	if t.Fallback {
		t.Problem = p.Validate()
	}
	return t
}
