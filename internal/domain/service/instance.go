package service

import (
	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
)

type Instance struct {
	SignIn    *signInService
	Notifier  *notifierService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, store contract.MessageStore, workCal contract.Calendar) *Instance {
	notifier := newNotifier(dm, slackClient, store, workCal)

	return &Instance{
		SignIn:    newSignIn(dm, slackClient),
		Notifier:  notifier,
		Scheduler: newScheduler(dm, notifier, workCal),
	}
}
