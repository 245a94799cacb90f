package deeplink

import (
	"strings"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// DefaultMobileTokens are user-agent fragments that identify mobile browsers.
var DefaultMobileTokens = []string{
	"Android",
	"webOS",
	"iPhone",
	"iPad",
	"iPod",
	"BlackBerry",
	"IEMobile",
	"Opera Mini",
}

// Classifier maps a user-agent string to a device class.
type Classifier struct {
	tokens []string // lowercased
}

// NewClassifier builds a classifier over tokens (case-insensitive).
// An empty list falls back to DefaultMobileTokens.
func NewClassifier(tokens []string) Classifier {
	if len(tokens) == 0 {
		tokens = DefaultMobileTokens
	}
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}
	return Classifier{tokens: lowered}
}

// Classify returns DeviceMobile when userAgent contains any mobile token.
func (c Classifier) Classify(userAgent string) domain.DeviceClass {
	if userAgent == "" {
		return domain.DeviceDesktop
	}
	ua := strings.ToLower(userAgent)
	for _, t := range c.tokens {
		if strings.Contains(ua, t) {
			return domain.DeviceMobile
		}
	}
	return domain.DeviceDesktop
}

// IsMobile is Classify with the default token table.
func IsMobile(userAgent string) bool {
	return NewClassifier(nil).Classify(userAgent) == domain.DeviceMobile
}
