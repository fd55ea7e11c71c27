package entity

// MessageState identifies the currently outstanding sign-in prompt.
// At most one is tracked at a time; it is overwritten on every
// successful send and cleared once the message is confirmed gone.
type MessageState struct {
	ChannelID string `json:"channel_id"`
	MessageTS string `json:"message_ts"`
}

// IsValid reports whether the state references a concrete message.
func (s *MessageState) IsValid() bool {
	return s != nil && s.ChannelID != "" && s.MessageTS != ""
}
