package contract

import "github.com/morningbot/morning-signin-bot/internal/domain/entity"

// MessageStore is the durable record of the outstanding sign-in
// message. Load returns (nil, nil) when no state exists.
type MessageStore interface {
	Load() (*entity.MessageState, error)
	Save(state entity.MessageState) error
	Clear() error
}
