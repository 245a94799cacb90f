package domain

// AnalyticsEvent is one fire-and-forget tracking call.
// Example: {Action: "share", Category: "whatsapp", Label: "event_details"}
type AnalyticsEvent struct {
	Action   string `json:"action"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// EventCount is how many times an AnalyticsEvent was recorded.
type EventCount struct {
	AnalyticsEvent
	Count int64 `json:"count"`
}

var (
	ShareEvent   = AnalyticsEvent{Action: string(ActionShare), Category: "whatsapp", Label: "event_details"}
	ContactEvent = AnalyticsEvent{Action: string(ActionContact), Category: "whatsapp", Label: "direct_message"}
)
