package deeplink

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

const (
	DefaultMobileEndpoint = "https://api.whatsapp.com/send"
	DefaultWebEndpoint    = "https://web.whatsapp.com/send"
	DefaultDirectBase     = "https://wa.me"
	FallbackURL           = "https://wa.me/"
)

var errInvalidText = errors.New("text is not valid UTF-8")

// Endpoints are the base URLs links are built on.
type Endpoints struct {
	Mobile string // share endpoint for mobile devices
	Web    string // share endpoint for everything else
	Direct string // base for direct chats, phone digits are appended as path
}

// DefaultEndpoints returns the public WhatsApp endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Mobile: DefaultMobileEndpoint,
		Web:    DefaultWebEndpoint,
		Direct: DefaultDirectBase,
	}
}

func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.Mobile == "" {
		e.Mobile = d.Mobile
	}
	if e.Web == "" {
		e.Web = d.Web
	}
	if e.Direct == "" {
		e.Direct = d.Direct
	}
	e.Direct = strings.TrimRight(e.Direct, "/")
	return e
}

// Builder builds WhatsApp deep links. The zero value is not usable; use New.
type Builder struct {
	endpoints  Endpoints
	classifier Classifier
}

// New returns a Builder. Empty endpoints fall back to the defaults.
func New(endpoints Endpoints, classifier Classifier) *Builder {
	return &Builder{
		endpoints:  endpoints.withDefaults(),
		classifier: classifier,
	}
}

// Default returns a Builder over the public endpoints and default token table.
func Default() *Builder {
	return New(DefaultEndpoints(), NewClassifier(nil))
}

// Classify exposes the builder's device classifier.
func (b *Builder) Classify(userAgent string) domain.DeviceClass {
	return b.classifier.Classify(userAgent)
}

// ShareLink embeds text on the endpoint matching class.
func (b *Builder) ShareLink(text string, class domain.DeviceClass) domain.DeepLink {
	encoded, err := Encode(text)
	if err != nil {
		return Fallback()
	}

	base, platform := b.endpoints.Web, domain.PlatformWeb
	if class == domain.DeviceMobile {
		base, platform = b.endpoints.Mobile, domain.PlatformMobile
	}

	return domain.DeepLink{
		Platform: platform,
		URL:      base + "?text=" + encoded,
	}
}

// ShareLinkFor classifies userAgent and builds the share link.
func (b *Builder) ShareLinkFor(text, userAgent string) domain.DeepLink {
	return b.ShareLink(text, b.Classify(userAgent))
}

// DirectLink opens a chat with phone, pre-filled with text.
// An empty phone yields "<base>/?text=..." which WhatsApp treats as a contact picker.
func (b *Builder) DirectLink(phone, text string) domain.DeepLink {
	encoded, err := Encode(text)
	if err != nil {
		return Fallback()
	}
	return domain.DeepLink{
		Platform: domain.PlatformDirect,
		URL:      b.endpoints.Direct + "/" + Digits(phone) + "?text=" + encoded,
	}
}

// Fallback is the link substituted when text cannot be encoded.
func Fallback() domain.DeepLink {
	return domain.DeepLink{Platform: domain.PlatformFallback, URL: FallbackURL}
}

// componentUnescaper undoes the QueryEscape escapes that encodeURIComponent
// never produces: space is %20 and ! ' ( ) * stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Encode percent-encodes s like encodeURIComponent.
func Encode(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errInvalidText
	}
	return componentUnescaper.Replace(url.QueryEscape(s)), nil
}

// Text extracts and decodes the text parameter of a link built by this package.
func Text(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	return u.Query().Get("text"), nil
}
