package notify

import "github.com/MrSnakeDoc/sharelink/internal/domain"

// Style is the presentation of a severity, as hex colours.
type Style struct {
	Background string
	Foreground string
}

// DefaultStyle is used for unknown severities.
var DefaultStyle = Style{Background: "#1f2937", Foreground: "#ffffff"}

var styles = map[domain.Severity]Style{
	domain.SeveritySuccess: {Background: "#35b9a6", Foreground: "#ffffff"},
	domain.SeverityError:   {Background: "#ef4444", Foreground: "#ffffff"},
	domain.SeverityInfo:    {Background: "#3b82f6", Foreground: "#ffffff"},
}

// StyleFor never fails: unknown tags get DefaultStyle.
func StyleFor(s domain.Severity) Style {
	if st, ok := styles[s]; ok {
		return st
	}
	return DefaultStyle
}
