// Package announce delivers spoken prompts. Announcing is fire-and-forget:
// no backend reports failure to its caller.
package announce

import (
	"sync"
	"sync/atomic"
)

// Announcer speaks or displays a line of text.
type Announcer interface {
	Announce(text string)
}

// Nop discards every announcement.
type Nop struct{}

func (Nop) Announce(string) {}

// Caption remembers the most recent announcement so the UI can show it.
type Caption struct {
	mu   sync.Mutex
	last string
}

func (c *Caption) Announce(text string) {
	c.mu.Lock()
	c.last = text
	c.mu.Unlock()
}

// Last returns the most recent announcement, or "" if none.
func (c *Caption) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Clear forgets the current caption.
func (c *Caption) Clear() {
	c.mu.Lock()
	c.last = ""
	c.mu.Unlock()
}

// Multi fans an announcement out to every member in order.
type Multi []Announcer

func (m Multi) Announce(text string) {
	for _, a := range m {
		if a != nil {
			a.Announce(text)
		}
	}
}

// Gate forwards to Next only while enabled. A new Gate is enabled.
type Gate struct {
	Next  Announcer
	muted atomic.Bool
}

// NewGate wraps next with a sound toggle.
func NewGate(next Announcer, enabled bool) *Gate {
	g := &Gate{Next: next}
	g.muted.Store(!enabled)
	return g
}

func (g *Gate) Announce(text string) {
	if g.muted.Load() || g.Next == nil {
		return
	}
	g.Next.Announce(text)
}

// SetEnabled turns forwarding on or off.
func (g *Gate) SetEnabled(on bool) { g.muted.Store(!on) }

// Enabled reports whether announcements are forwarded.
func (g *Gate) Enabled() bool { return !g.muted.Load() }
