// Package mpris watches a single MPRIS media player over the session
// bus and keeps a shared projection of its playback state up to date.
package mpris

import (
	"context"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/baro/internal/invalidate"
	"github.com/sirupsen/logrus"
)

const (
	busService      = "org.freedesktop.DBus"
	objectPath      = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
	propsInterface  = "org.freedesktop.DBus.Properties"

	callTimeout  = 5 * time.Second
	refetchDelay = 1 * time.Second
)

// Watcher subscribes to one player's PropertiesChanged signals and to
// the bus's NameOwnerChanged signal for that player, and mutates the
// shared PlayerState as they arrive. Control actions are fire and
// forget.
type Watcher struct {
	conn    *dbus.Conn
	busName string
	obj     dbus.BusObject
	state   *PlayerState

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher starts watching org.mpris.MediaPlayer2.<instance>. It
// never blocks; subscriptions and the initial property fetch happen on
// a background goroutine. If a subscription cannot be registered the
// watcher stays inert and the state keeps its defaults.
func NewWatcher(conn *dbus.Conn, instance string, inv *invalidate.Signal) *Watcher {
	w := &Watcher{
		conn:    conn,
		busName: "org.mpris.MediaPlayer2." + instance,
		state:   NewPlayerState(inv),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	w.obj = conn.Object(w.busName, objectPath)

	go w.run()
	return w
}

// Snapshot returns a copy of the current player state.
func (w *Watcher) Snapshot() State {
	return w.state.Snapshot()
}

// Close stops the background dispatcher and removes both match rules.
// It returns once the dispatcher has exited, so no late signal can
// touch the shared state afterwards.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() { close(w.stop) })
	<-w.done
}

func (w *Watcher) run() {
	defer close(w.done)

	signals := make(chan *dbus.Signal, 32)
	w.conn.Signal(signals)
	defer w.conn.RemoveSignal(signals)

	propMatch := []dbus.MatchOption{
		dbus.WithMatchSender(w.busName),
		dbus.WithMatchInterface(propsInterface),
		dbus.WithMatchMember("PropertiesChanged"),
	}
	if err := w.conn.AddMatchSignal(propMatch...); err != nil {
		logrus.Errorf("mpris: AddMatch on PropertiesChanged failed: %v", err)
		return
	}

	ownerMatch := []dbus.MatchOption{
		dbus.WithMatchSender(busService),
		dbus.WithMatchInterface(busService),
		dbus.WithMatchMember("NameOwnerChanged"),
		dbus.WithMatchArg(0, w.busName),
	}
	if err := w.conn.AddMatchSignal(ownerMatch...); err != nil {
		if err := w.conn.RemoveMatchSignal(propMatch...); err != nil {
			logrus.Warnf("mpris: RemoveMatch on PropertiesChanged failed: %v", err)
		}
		logrus.Errorf("mpris: AddMatch on NameOwnerChanged failed: %v", err)
		return
	}

	w.fetchAll()

	for {
		select {
		case <-w.stop:
			if err := w.conn.RemoveMatchSignal(ownerMatch...); err != nil {
				logrus.Warnf("mpris: RemoveMatch on NameOwnerChanged failed: %v", err)
			}
			if err := w.conn.RemoveMatchSignal(propMatch...); err != nil {
				logrus.Warnf("mpris: RemoveMatch on PropertiesChanged failed: %v", err)
			}
			return
		case sig, ok := <-signals:
			if !ok {
				select {
				case <-w.stop:
					return
				default:
				}
				// Nothing meaningful can be rendered without the bus.
				logrus.Fatal("mpris: lost connection to session bus")
			}
			w.handleSignal(sig)
		}
	}
}

// handleSignal must return promptly; anything slow is spawned off.
func (w *Watcher) handleSignal(sig *dbus.Signal) {
	switch sig.Name {
	case propsInterface + ".PropertiesChanged":
		w.propertiesChanged(sig.Body)
	case busService + ".NameOwnerChanged":
		w.ownerChanged(sig.Body)
	}
}

func (w *Watcher) propertiesChanged(body []any) {
	if len(body) < 3 {
		return
	}
	if iface, _ := body[0].(string); iface != playerInterface {
		return
	}
	if invalidated, ok := body[2].([]string); ok && len(invalidated) > 0 {
		logrus.Warnf("mpris: ignoring %d invalidated properties", len(invalidated))
	}
	if props, ok := body[1].(map[string]dbus.Variant); ok {
		w.state.Update(props)
	}
}

func (w *Watcher) ownerChanged(body []any) {
	if len(body) < 3 {
		return
	}
	if name, _ := body[0].(string); name != w.busName {
		return
	}

	newOwner, _ := body[2].(string)
	if newOwner == "" {
		w.state.NameLost()
		return
	}

	// The player may take a moment after registering its name before
	// it has track information, and it will not signal when it does.
	// Ask for the metadata ourselves after a grace period.
	go func() {
		time.Sleep(refetchDelay)

		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		var meta dbus.Variant
		err := w.obj.CallWithContext(ctx, propsInterface+".Get", 0, playerInterface, "Metadata").Store(&meta)
		if err != nil {
			logrus.Warnf("mpris: metadata fetch after %s appeared failed: %v", w.busName, err)
			return
		}
		w.state.UpdateMetadata(meta.Value())
	}()
}

// fetchAll loads the full player property set once after setup. The
// result may race with early signals; last write wins.
func (w *Watcher) fetchAll() {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	var props map[string]dbus.Variant
	err := w.obj.CallWithContext(ctx, propsInterface+".GetAll", 0, playerInterface).Store(&props)
	if err != nil {
		logrus.Warnf("mpris: initial property fetch failed: %v", err)
		return
	}
	w.state.Update(props)
}

// callPlayer issues a best-effort control call. The reply is read only
// so the call does not linger; errors end up in the log and nowhere
// else.
func (w *Watcher) callPlayer(method string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		call := w.obj.CallWithContext(ctx, playerInterface+"."+method, 0)
		if call.Err != nil {
			logrus.Warnf("mpris: %s failed: %v", method, call.Err)
		}
	}()
}

func (w *Watcher) Play()      { w.callPlayer("Play") }
func (w *Watcher) Pause()     { w.callPlayer("Pause") }
func (w *Watcher) PlayPause() { w.callPlayer("PlayPause") }
func (w *Watcher) Stop()      { w.callPlayer("Stop") }
func (w *Watcher) Next()      { w.callPlayer("Next") }
func (w *Watcher) Previous()  { w.callPlayer("Previous") }
