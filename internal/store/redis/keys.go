package redis

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixAnalytics is the prefix for analytics hashes (one per category/action)
	KeyPrefixAnalytics = "sharelink:analytics:"
	// KeyAllAnalytics is the set of all analytics hash keys
	KeyAllAnalytics = "sharelink:analytics:keys"
)

// AnalyticsKey returns the hash key holding label counters for category/action
// Example: ("whatsapp", "share") -> "sharelink:analytics:whatsapp:share"
func AnalyticsKey(category, action string) string {
	return KeyPrefixAnalytics + category + ":" + action
}

// AllAnalyticsKey returns the key for the set of all analytics hashes
func AllAnalyticsKey() string {
	return KeyAllAnalytics
}

// ExtractCategoryAction splits an analytics key back into category and action
func ExtractCategoryAction(key string) (string, string, error) {
	rest, ok := strings.CutPrefix(key, KeyPrefixAnalytics)
	if !ok || rest == "" {
		return "", "", fmt.Errorf("invalid analytics key: %s", key)
	}
	category, action, ok := strings.Cut(rest, ":")
	if !ok || category == "" || action == "" {
		return "", "", fmt.Errorf("invalid analytics key: %s", key)
	}
	return category, action, nil
}
