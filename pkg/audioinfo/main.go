package audioinfo

import (
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

// Sink describes the default PulseAudio output device.
type Sink struct {
	Name  string `json:"name"`
	Level int    `json:"level"` // percent 0-100
	Muted bool   `json:"muted"`
}

func channelVolumesToPercent(cv proto.ChannelVolumes) int {
	if len(cv) == 0 {
		return 100
	}
	var sum float64
	for _, v := range cv {
		sum += float64(v) / float64(proto.VolumeNorm) * 100.0
	}
	pct := int(sum/float64(len(cv)) + 0.5)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DefaultSink queries PulseAudio for the default output's volume level
// and mute flag.
func DefaultSink() (Sink, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return Sink{}, fmt.Errorf("failed to create pulse client: %w", err)
	}
	defer c.Close()

	s, err := c.DefaultSink()
	if err != nil {
		return Sink{}, fmt.Errorf("failed to get default sink: %w", err)
	}

	var reply proto.GetSinkInfoReply
	req := proto.GetSinkInfo{SinkIndex: proto.Undefined, SinkName: s.ID()}
	if err := c.RawRequest(&req, &reply); err != nil {
		return Sink{}, fmt.Errorf("failed to request sink info: %w", err)
	}

	return Sink{
		Name:  s.Name(),
		Level: channelVolumesToPercent(reply.ChannelVolumes),
		Muted: reply.Mute,
	}, nil
}
