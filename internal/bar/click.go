package bar

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ClickEvent is the bar host's report of a pointer click on a named
// block. Only name and button matter here; the geometry fields exist
// so a full event still decodes cleanly.
type ClickEvent struct {
	Name      string `json:"name"`
	Instance  string `json:"instance"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Button    int    `json:"button"`
	RelativeX int    `json:"relative_x"`
	RelativeY int    `json:"relative_y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Controls is the set of playback actions a click can trigger.
type Controls interface {
	Play()
	Pause()
	Previous()
	Next()
}

// ParseClickEvent decodes one input line, tolerating the comma the
// protocol puts between array elements.
func ParseClickEvent(line string) (ClickEvent, error) {
	line = strings.TrimPrefix(strings.TrimSpace(line), ",")
	var ev ClickEvent
	err := json.Unmarshal([]byte(line), &ev)
	return ev, err
}

// Dispatch routes a click to the matching control action. Only the
// left button counts.
func Dispatch(ev ClickEvent, ctl Controls) {
	if ev.Button != 1 {
		return
	}
	switch ev.Name {
	case ActionPlay:
		ctl.Play()
	case ActionPause:
		ctl.Pause()
	case ActionPrevious:
		ctl.Previous()
	case ActionNext:
		ctl.Next()
	}
}

// ReadClicks consumes click events from the bar host until in closes.
// The first line is the opening bracket of the event array and carries
// no event.
func ReadClicks(in io.Reader, ctl Controls) {
	scanner := bufio.NewScanner(in)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			continue
		}
		if line == "" || line == "[" || line == "]" {
			continue
		}

		ev, err := ParseClickEvent(line)
		if err != nil {
			logrus.Warnf("bar: malformed click event: %v", err)
			continue
		}
		Dispatch(ev, ctl)
	}
}
