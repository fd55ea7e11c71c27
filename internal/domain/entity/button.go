package entity

// ButtonAction is the closed set of actions a sign-in button click can
// decode to. Decoding happens once at the handler boundary; everything
// downstream switches on the variant instead of matching raw IDs.
type ButtonAction int

const (
	ActionUnknown ButtonAction = iota
	ActionOffice
	ActionRemote
)

// ButtonClick is an inbound button interaction after boundary decoding.
type ButtonClick struct {
	UserID    string
	Username  string
	ChannelID string
	Action    ButtonAction
}
