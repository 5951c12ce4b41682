package bar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hoppxi/baro/internal/mpris"
)

// Block is one segment of the status line.
type Block struct {
	FullText  string `json:"full_text"`
	Name      string `json:"name,omitempty"`
	Separator *bool  `json:"separator,omitempty"`
}

// Action identifiers carried in the name field of the clickable media
// blocks and echoed back by the bar host in click events.
const (
	ActionPlay     = "mpris-play"
	ActionPause    = "mpris-pause"
	ActionPrevious = "mpris-previous"
	ActionNext     = "mpris-next"
)

// Font Awesome transport glyphs.
const (
	glyphPrevious = "\uf049"
	glyphPlay     = "\uf04b"
	glyphPause    = "\uf04c"
	glyphNext     = "\uf050"
)

// Writer emits the i3bar JSON protocol: a header object, then one
// block array per rendered cycle inside an endless outer array.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteHeader declares the protocol version, that SIGSTOP handling is
// unwanted and that click events should be sent, then opens the outer
// array.
func (w *Writer) WriteHeader() error {
	header := map[string]any{
		"version":      1,
		"stop_signal":  0,
		"click_events": true,
	}
	data, err := json.Marshal(header)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w.out, "%s\n[\n", data)
	return err
}

// WriteBlocks emits one status line. The trailing comma keeps the
// outer array open; the bar host accepts it on every element.
func (w *Writer) WriteBlocks(blocks []Block) error {
	data, err := json.Marshal(blocks)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w.out, "%s,\n", data)
	return err
}

// MediaBlocks renders the four media segments from a state snapshot:
// track text, previous, play/pause and next. With no track loaded all
// texts collapse to empty so the bar shows nothing.
func MediaBlocks(state mpris.State) []Block {
	noSep := false

	track := ""
	if state.Title != "" {
		track = strings.Join(append(append([]string(nil), state.Artists...), state.Title), " - ")
	}

	prevText, playPauseText, nextText := "", "", ""
	if track != "" {
		prevText, nextText = glyphPrevious, glyphNext
		if state.Playing {
			playPauseText = glyphPause
		} else {
			playPauseText = glyphPlay
		}
	}

	playPauseName := ActionPlay
	if state.Playing {
		playPauseName = ActionPause
	}

	return []Block{
		{FullText: track, Separator: &noSep},
		{FullText: prevText, Name: ActionPrevious, Separator: &noSep},
		{FullText: playPauseText, Name: playPauseName, Separator: &noSep},
		{FullText: nextText, Name: ActionNext},
	}
}
