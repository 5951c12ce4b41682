// Package bar drives the render cycle and speaks the i3bar JSON
// protocol on stdout/stdin.
package bar

import (
	"fmt"
	"io"
	"time"

	"github.com/hoppxi/baro/internal/invalidate"
	"github.com/hoppxi/baro/internal/mpris"
	"github.com/hoppxi/baro/pkg/audioinfo"
	"github.com/hoppxi/baro/pkg/bytecount"
	"github.com/hoppxi/baro/pkg/diskinfo"
	"github.com/hoppxi/baro/pkg/meminfo"
	"github.com/sirupsen/logrus"
)

// maxWait caps the sleep between cycles so the clock block never lags
// a minute change by more than this.
const maxWait = 2 * time.Second

// StateSource yields a copy of the current player state.
type StateSource interface {
	Snapshot() mpris.State
}

// Options selects which metric blocks the bar renders.
type Options struct {
	Mounts []string
	Volume bool
}

// Bar owns the render loop: snapshot the player state, gather system
// metrics, emit one protocol line, then sleep until the next deadline
// or an invalidation, whichever fires first.
type Bar struct {
	writer *Writer
	state  StateSource
	inv    *invalidate.Signal
	opts   Options
}

func New(out io.Writer, state StateSource, inv *invalidate.Signal, opts Options) *Bar {
	return &Bar{
		writer: NewWriter(out),
		state:  state,
		inv:    inv,
		opts:   opts,
	}
}

// Run renders until stop is closed. Closing stop should be paired with
// an invalidation so a waiting cycle wakes up and notices.
func (b *Bar) Run(stop <-chan struct{}) error {
	if err := b.writer.WriteHeader(); err != nil {
		return err
	}

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		state := b.state.Snapshot()

		blocks := MediaBlocks(state)
		blocks = append(blocks, b.metricBlocks()...)

		now := time.Now()
		blocks = append(blocks, Block{FullText: now.Format("Mon 02.01.2006 15:04")})

		if err := b.writer.WriteBlocks(blocks); err != nil {
			return err
		}

		b.inv.Wait(waitFor(now))
	}
}

// waitFor is min(maxWait, time until the next wall-clock minute).
func waitFor(now time.Time) time.Duration {
	until := now.Truncate(time.Minute).Add(time.Minute).Sub(now)
	if until < maxWait {
		return until
	}
	return maxWait
}

// metricBlocks collects the disk, memory and optional volume blocks.
// Per-metric failures render as an ERROR marker instead of
// propagating; the volume block is simply omitted when PulseAudio is
// unreachable.
func (b *Bar) metricBlocks() []Block {
	blocks := make([]Block, 0, len(b.opts.Mounts)+2)

	for _, mount := range b.opts.Mounts {
		text := "ERROR"
		if avail, err := diskinfo.Available(mount); err == nil {
			text = bytecount.Format(avail)
		} else {
			logrus.Debugf("bar: statfs %s: %v", mount, err)
		}
		blocks = append(blocks, Block{FullText: fmt.Sprintf("%s %s", mount, text)})
	}

	if mem, err := meminfo.Read(); err == nil {
		blocks = append(blocks, Block{FullText: fmt.Sprintf("M %s S %s",
			bytecount.Format(mem.Available), bytecount.Format(mem.SwapFree))})
	} else {
		logrus.Debugf("bar: meminfo: %v", err)
		blocks = append(blocks, Block{FullText: "M ERROR"})
	}

	if b.opts.Volume {
		if sink, err := audioinfo.DefaultSink(); err == nil {
			text := fmt.Sprintf("V %d%%", sink.Level)
			if sink.Muted {
				text = "V mute"
			}
			blocks = append(blocks, Block{FullText: text})
		} else {
			logrus.Debugf("bar: pulse: %v", err)
		}
	}

	return blocks
}
