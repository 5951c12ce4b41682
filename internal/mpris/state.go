package mpris

import (
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/baro/internal/invalidate"
)

// State is the projection of the watched player: whatever the last
// signal said is playing right now.
type State struct {
	Playing bool
	Title   string
	Artists []string
}

// PlayerState guards State behind one mutex. Writers are the watcher's
// signal handlers; readers copy via Snapshot. The lock is never held
// across a remote call or formatting.
type PlayerState struct {
	inv *invalidate.Signal

	mu  sync.Mutex
	cur State
}

func NewPlayerState(inv *invalidate.Signal) *PlayerState {
	return &PlayerState{inv: inv}
}

// Snapshot returns a copy of the current state.
func (p *PlayerState) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := p.cur
	out.Artists = append([]string(nil), p.cur.Artists...)
	return out
}

// Update applies a PropertiesChanged map. Unrecognized keys are
// ignored and malformed values leave their field alone. The
// invalidation signal fires even when nothing recognized changed;
// the render loop re-renders cheaply either way.
func (p *PlayerState) Update(props map[string]dbus.Variant) {
	p.mu.Lock()
	for key, value := range props {
		switch key {
		case "PlaybackStatus":
			// Playing, Paused, Stopped
			status, _ := asString(value.Value())
			p.cur.Playing = status == "Playing"
		case "Metadata":
			p.applyMetadata(value.Value())
		}
	}
	p.mu.Unlock()

	p.inv.Notify()
}

// UpdateMetadata applies a bare Metadata value as returned by a
// Properties.Get call.
func (p *PlayerState) UpdateMetadata(meta any) {
	p.mu.Lock()
	p.applyMetadata(meta)
	p.mu.Unlock()

	p.inv.Notify()
}

// NameLost resets the projection to its defaults. The player process
// is gone, so whatever we knew is stale.
func (p *PlayerState) NameLost() {
	p.mu.Lock()
	p.cur = State{}
	p.mu.Unlock()

	p.inv.Notify()
}

// applyMetadata must run with the lock held. A field with the wrong
// shape simply contributes no new value.
func (p *PlayerState) applyMetadata(meta any) {
	fields, ok := asPropMap(meta)
	if !ok {
		return
	}

	if raw, ok := fields["xesam:title"]; ok {
		if title, ok := asString(raw.Value()); ok {
			p.cur.Title = title
		}
	}
	if raw, ok := fields["xesam:artist"]; ok {
		if artists, ok := asStringList(raw.Value()); ok {
			p.cur.Artists = artists
		}
	}
}
