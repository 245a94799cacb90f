package profile

import (
	"sync/atomic"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// Holder publishes the current profile. Values are swapped whole, never
// edited in place.
type Holder struct {
	current atomic.Pointer[domain.EventProfile]
}

// NewHolder starts with p.
func NewHolder(p domain.EventProfile) *Holder {
	h := &Holder{}
	h.Store(p)
	return h
}

// Current returns a copy of the profile in effect.
func (h *Holder) Current() domain.EventProfile {
	p := h.current.Load()
	if p == nil {
		return domain.DefaultProfile()
	}
	return p.WithDefaults()
}

// Store publishes p.
func (h *Holder) Store(p domain.EventProfile) {
	p = p.WithDefaults()
	h.current.Store(&p)
}

// LoadFile reads, maps and validates a profile file.
func LoadFile(path string) (domain.EventProfile, error) {
	f, err := NewLoader(path).Load()
	if err != nil {
		return domain.EventProfile{}, err
	}
	return Map(f)
}
