package operation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

type media struct{}

var Media media

var (
	dbusConn *dbus.Conn
	connOnce sync.Once
)

// getDBusConnection initializes and returns DBus connection.
func getDBusConnection() (*dbus.Conn, error) {
	var err error
	connOnce.Do(func() {
		dbusConn, err = dbus.ConnectSessionBus()
		if err != nil {
			dbusConn = nil
			return
		}
	})

	if dbusConn == nil {
		return nil, fmt.Errorf("dbus connection error: %v", err)
	}
	return dbusConn, nil
}

// ControlMedia sends a playback command (play, pause, play-pause,
// stop, next, previous) to the given MPRIS player instance.
func (m *media) ControlMedia(instance, action string) error {
	conn, err := getDBusConnection()
	if err != nil {
		return err
	}

	method := mapActionToMethod(action)
	if method == "" {
		return fmt.Errorf("unknown action: %s", action)
	}

	obj := conn.Object("org.mpris.MediaPlayer2."+instance, "/org/mpris/MediaPlayer2")

	call := obj.Call("org.mpris.MediaPlayer2.Player."+method, 0)
	return call.Err
}

func mapActionToMethod(action string) string {
	switch strings.ToLower(action) {
	case "play":
		return "Play"
	case "pause":
		return "Pause"
	case "next":
		return "Next"
	case "previous", "prev":
		return "Previous"
	case "stop":
		return "Stop"
	case "play-pause":
		return "PlayPause"
	default:
		return ""
	}
}
