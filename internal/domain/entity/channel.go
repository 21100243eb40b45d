package entity

// Channel is an arrival notification output. Each channel tracks arrival
// independently.
type Channel string

const (
	ChannelSound     Channel = "sound"
	ChannelVibration Channel = "vibration"
	ChannelDialog    Channel = "dialog"
)

// Channels lists every arrival channel in dispatch order.
func Channels() []Channel {
	return []Channel{ChannelSound, ChannelVibration, ChannelDialog}
}
