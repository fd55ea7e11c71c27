package domain

import "github.com/morningbot/morning-signin-bot/internal/domain/entity"

// Sign-in type tags as stored in the database.
const (
	SignInTypeOffice = "Kontor"
	SignInTypeRemote = "Hjemmekontor"
)

// Action IDs carried by the two sign-in buttons. Other interactive
// elements may share the event stream, so everything else decodes to
// entity.ActionUnknown.
const (
	ButtonOfficeID = "daily_signin_kontor"
	ButtonRemoteID = "daily_signin_hjemme"
)

// Column bounds enforced by the sign_ins migration.
const (
	MaxUsernameLen   = 100
	MaxSignInTypeLen = 20
)

// Schedule defaults used when no config exists yet.
const (
	DefaultSignInHour   = 8
	DefaultSignInMinute = 0
)

// ActionFromID decodes an inbound action identifier into the closed
// set of button actions.
func ActionFromID(actionID string) entity.ButtonAction {
	switch actionID {
	case ButtonOfficeID:
		return entity.ActionOffice
	case ButtonRemoteID:
		return entity.ActionRemote
	default:
		return entity.ActionUnknown
	}
}

// SignInTypeFor maps a recognized button action to its sign-in type tag.
func SignInTypeFor(action entity.ButtonAction) string {
	switch action {
	case entity.ActionOffice:
		return SignInTypeOffice
	case entity.ActionRemote:
		return SignInTypeRemote
	default:
		return ""
	}
}
