package algorithms

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/channel"
)

// Channel names accepted by ChannelIsolation.
const (
	ChannelRed   = "R"
	ChannelGreen = "G"
	ChannelBlue  = "B"
)

var channels = map[string]channel.Channel{
	ChannelRed:   channel.Red,
	ChannelGreen: channel.Green,
	ChannelBlue:  channel.Blue,
}

// ChannelIsolation keeps one RGB channel and zero-fills the other two.
// Alpha is kept as it is.
type ChannelIsolation struct{}

func NewChannelIsolation() *ChannelIsolation {
	return &ChannelIsolation{}
}

func (c *ChannelIsolation) Apply(input image.Image, params map[string]interface{}) (image.Image, error) {
	ch, err := channelParam(params)
	if err != nil {
		return nil, err
	}
	return channel.ExtractMultiple(input, ch, channel.Alpha), nil
}

func (c *ChannelIsolation) GetName() string {
	return "Channel"
}

func (c *ChannelIsolation) Validate(params map[string]interface{}) error {
	_, err := channelParam(params)
	return err
}

func (c *ChannelIsolation) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "channel",
			Default:     ChannelRed,
			Description: "Channel to keep",
			Options:     []string{ChannelRed, ChannelGreen, ChannelBlue},
		},
	}
}

func channelParam(params map[string]interface{}) (channel.Channel, error) {
	name, _ := params["channel"].(string)
	ch, ok := channels[name]
	if !ok {
		return 0, fmt.Errorf("unknown channel %q", name)
	}
	return ch, nil
}
