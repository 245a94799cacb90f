package profile

// File is the top-level structure of profile.yaml
type File struct {
	Event    EventSection    `yaml:"event"`
	Links    []LinkEntry     `yaml:"links"`
	Messages MessagesSection `yaml:"messages"`
}

// EventSection holds the rendered event details
type EventSection struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Time     string `yaml:"time"`
	Location string `yaml:"location"`
	Capacity string `yaml:"capacity"`
	Phone    string `yaml:"phone"`
}

// LinkEntry is a single "follow us" link; list order is render order
type LinkEntry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// MessagesSection overrides the default texts
type MessagesSection struct {
	Emoji           string `yaml:"emoji,omitempty"`
	CallToAction    string `yaml:"call_to_action,omitempty"`
	ContactGreeting string `yaml:"contact_greeting,omitempty"`
	ErrorMessage    string `yaml:"error_message,omitempty"`
}
