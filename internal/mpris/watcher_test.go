package mpris

import (
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/baro/internal/invalidate"
)

// handlerWatcher builds a watcher with just enough wiring to drive the
// signal handlers directly; no bus connection is involved.
func handlerWatcher(inv *invalidate.Signal) *Watcher {
	return &Watcher{
		busName: "org.mpris.MediaPlayer2.spotify",
		state:   NewPlayerState(inv),
	}
}

func TestPropertiesChangedAppliesPlayerInterface(t *testing.T) {
	inv := invalidate.New()
	w := handlerWatcher(inv)

	body := []any{
		"org.mpris.MediaPlayer2.Player",
		map[string]dbus.Variant{"PlaybackStatus": dbus.MakeVariant("Playing")},
		[]string{},
	}
	w.propertiesChanged(body)

	if !w.Snapshot().Playing {
		t.Fatal("PropertiesChanged for the player interface must apply")
	}
	if !inv.Wait(10 * time.Millisecond) {
		t.Fatal("applying a signal must fire the invalidation")
	}
}

func TestPropertiesChangedIgnoresOtherInterfaces(t *testing.T) {
	inv := invalidate.New()
	w := handlerWatcher(inv)

	body := []any{
		"org.mpris.MediaPlayer2.TrackList",
		map[string]dbus.Variant{"PlaybackStatus": dbus.MakeVariant("Playing")},
		[]string{},
	}
	w.propertiesChanged(body)

	if w.Snapshot().Playing {
		t.Fatal("signals for other interfaces must be ignored")
	}
	if inv.Wait(10 * time.Millisecond) {
		t.Fatal("an ignored signal must not fire the invalidation")
	}
}

func TestPropertiesChangedTruncatedBody(t *testing.T) {
	inv := invalidate.New()
	w := handlerWatcher(inv)

	w.propertiesChanged([]any{"org.mpris.MediaPlayer2.Player"})

	if inv.Wait(10 * time.Millisecond) {
		t.Fatal("a truncated body must be dropped")
	}
}

func TestOwnerChangedLostResetsState(t *testing.T) {
	inv := invalidate.New()
	w := handlerWatcher(inv)
	w.state.Update(map[string]dbus.Variant{
		"PlaybackStatus": dbus.MakeVariant("Playing"),
	})
	inv.Wait(10 * time.Millisecond)

	w.ownerChanged([]any{"org.mpris.MediaPlayer2.spotify", ":1.5", ""})

	got := w.Snapshot()
	if got.Playing || got.Title != "" || len(got.Artists) != 0 {
		t.Fatalf("losing the name must reset the state, got %+v", got)
	}
	if !inv.Wait(10 * time.Millisecond) {
		t.Fatal("losing the name must fire the invalidation")
	}
}

func TestOwnerChangedOtherNameIgnored(t *testing.T) {
	inv := invalidate.New()
	w := handlerWatcher(inv)
	w.state.Update(map[string]dbus.Variant{
		"PlaybackStatus": dbus.MakeVariant("Playing"),
	})
	inv.Wait(10 * time.Millisecond)

	w.ownerChanged([]any{"org.mpris.MediaPlayer2.vlc", ":1.7", ""})

	if !w.Snapshot().Playing {
		t.Fatal("ownership changes of other names must be ignored")
	}
}
