package profile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// templateVar matches {{SHARELINK_VAR_...}} placeholders
var templateVar = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Loader handles loading and parsing of profile.yaml
type Loader struct {
	filePath string
	lookup   func(string) (string, bool)
}

// NewLoader creates a new profile loader reading placeholders from the environment
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		lookup:   os.LookupEnv,
	}
}

// Path returns the file the loader reads
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the profile file
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return l.Parse(data)
}

// Parse expands placeholders and decodes data
func (l *Loader) Parse(data []byte) (*File, error) {
	data = expandTemplateVariables(data, l.lookup)

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profile yaml: %w", err)
	}
	return &file, nil
}

// expandTemplateVariables replaces {{NAME}} with the value of NAME.
// Only SHARELINK_VAR_* names are expanded; anything else, or an unset
// variable, becomes an empty string.
// Example: {{SHARELINK_VAR_PHONE}} -> +91 84120 11008
func expandTemplateVariables(data []byte, lookup func(string) (string, bool)) []byte {
	return templateVar.ReplaceAllFunc(data, func(m []byte) []byte {
		name := string(templateVar.FindSubmatch(m)[1])
		if !strings.HasPrefix(name, "SHARELINK_VAR_") {
			return nil
		}
		v, _ := lookup(name)
		return []byte(v)
	})
}
