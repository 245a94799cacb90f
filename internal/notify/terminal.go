package notify

import (
	"io"
	"sync"

	"github.com/muesli/termenv"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

var severityGlyphs = map[domain.Severity]string{
	domain.SeveritySuccess: "✓",
	domain.SeverityError:   "✗",
	domain.SeverityInfo:    "ℹ",
}

// TerminalPresenter draws the notification as a coloured status line.
type TerminalPresenter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewTerminalPresenter writes to w, detecting its colour profile.
func NewTerminalPresenter(w io.Writer) *TerminalPresenter {
	return &TerminalPresenter{out: termenv.NewOutput(w)}
}

func (p *TerminalPresenter) Show(n domain.Notification, style Style) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := " " + n.Message + " "
	if g, ok := severityGlyphs[n.Severity]; ok {
		text = " " + g + text
	}

	styled := p.out.String(text).
		Foreground(p.out.Color(style.Foreground)).
		Background(p.out.Color(style.Background)).
		Bold()

	// The cursor stays on the toast line so Hide can erase it in place.
	p.out.ClearLine()
	_, _ = io.WriteString(p.out, "\r"+styled.String())
}

func (p *TerminalPresenter) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.ClearLine()
	_, _ = io.WriteString(p.out, "\r")
}
