package domain

// Platform identifies which WhatsApp surface a DeepLink targets.
type Platform string

const (
	PlatformMobile   Platform = "whatsapp-mobile"
	PlatformWeb      Platform = "whatsapp-web"
	PlatformDirect   Platform = "whatsapp-direct"
	PlatformFallback Platform = "whatsapp-fallback"
)

// DeviceClass selects the share endpoint.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceDesktop DeviceClass = "desktop"
)

// DeepLink is a destination URL for a messaging app.
// It is built per request and never cached.
type DeepLink struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
}

// Action names what a user asked for when a link is opened.
type Action string

const (
	ActionShare   Action = "share"
	ActionContact Action = "contact"
)
