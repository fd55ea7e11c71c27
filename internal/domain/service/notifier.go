package service

import (
	"fmt"
	"log"
	"time"

	"github.com/slack-go/slack"

	"github.com/morningbot/morning-signin-bot/internal/domain"
	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

type notifierService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	store       contract.MessageStore
	workCal     contract.Calendar
}

func newNotifier(dm contract.DataManager, slackClient contract.SlackClient, store contract.MessageStore, workCal contract.Calendar) *notifierService {
	return &notifierService{
		dm:          dm,
		slackClient: slackClient,
		store:       store,
		workCal:     workCal,
	}
}

// SendDailySignIn runs one notification cycle: delete the previous
// prompt (best effort), skip non-working days, post a fresh prompt and
// persist its identity. Delete strictly precedes send so at most one
// prompt is ever visible.
func (n *notifierService) SendDailySignIn() error {
	n.deletePreviousMessage()

	now := time.Now()
	if n.workCal.IsNonWorkingDay(now) {
		log.Printf("Skipping sign-in prompt: %s is not a working day", now.Format("2006-01-02"))
		return nil
	}

	cfg, err := n.dm.Schedule().Get()
	if err != nil {
		return fmt.Errorf("failed to get schedule config: %w", err)
	}
	if cfg == nil || cfg.TargetChannelID == "" {
		return fmt.Errorf("no target channel configured")
	}

	_, ts, err := n.slackClient.PostMessage(
		cfg.TargetChannelID,
		slack.MsgOptionText("God morgen! Logg inn for dagens arbeidsdag.", false),
		slack.MsgOptionBlocks(buildSignInBlocks(now)...),
	)
	if err != nil {
		if isSlackError(err, "channel_not_found", "is_archived", "not_in_channel") {
			return fmt.Errorf("target channel %s unavailable: %w", cfg.TargetChannelID, err)
		}
		return fmt.Errorf("failed to send sign-in message: %w", err)
	}

	log.Printf("Sign-in message sent to channel %s (ts %s)", cfg.TargetChannelID, ts)

	if err := n.store.Save(entity.MessageState{ChannelID: cfg.TargetChannelID, MessageTS: ts}); err != nil {
		// The prompt is live even if tracking failed; the next cycle
		// simply cannot delete it.
		log.Printf("Failed to save message state for %s/%s: %v", cfg.TargetChannelID, ts, err)
	}

	return nil
}

// deletePreviousMessage removes the outstanding prompt if one is
// tracked. Stale references (message or channel already gone) clear
// the state; permission failures keep it so the next cycle retries.
func (n *notifierService) deletePreviousMessage() {
	st, err := n.store.Load()
	if err != nil {
		log.Printf("Failed to load message state: %v", err)
		return
	}
	if st == nil {
		log.Println("No previous sign-in message to delete")
		return
	}

	_, _, err = n.slackClient.DeleteMessage(st.ChannelID, st.MessageTS)
	switch {
	case err == nil:
		log.Printf("Deleted previous sign-in message %s in channel %s", st.MessageTS, st.ChannelID)

	case isSlackError(err, "message_not_found"):
		log.Printf("Previous sign-in message %s was already deleted", st.MessageTS)

	case isSlackError(err, "channel_not_found"):
		log.Printf("Channel %s for previous sign-in message no longer exists", st.ChannelID)

	case isSlackError(err, "cant_delete_message", "restricted_action"):
		// A human has to fix permissions; keep the state so the next
		// cycle retries the delete.
		log.Printf("ERROR: missing permission to delete message %s in channel %s: %v", st.MessageTS, st.ChannelID, err)
		return

	default:
		log.Printf("Failed to delete previous sign-in message %s: %v", st.MessageTS, err)
		return
	}

	if err := n.store.Clear(); err != nil {
		log.Printf("Failed to clear message state: %v", err)
	}
}

func buildSignInBlocks(now time.Time) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("📋 Daglig innsjekking: %s", now.Format("Monday 2. January 2006")), true, false),
	)

	greeting := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "*God morgen!* 👋\n\nVennligst logg inn for dagens arbeidsdag ved å bruke en av knappene nedenfor.", false, false),
		nil, nil,
	)

	office := slack.NewButtonBlockElement(
		domain.ButtonOfficeID,
		domain.SignInTypeOffice,
		slack.NewTextBlockObject(slack.PlainTextType, "🏢 Logg inn (Kontor)", true, false),
	)
	office.Style = slack.StylePrimary

	remote := slack.NewButtonBlockElement(
		domain.ButtonRemoteID,
		domain.SignInTypeRemote,
		slack.NewTextBlockObject(slack.PlainTextType, "🏡 Logg inn (Hjemmekontor)", true, false),
	)

	actions := slack.NewActionBlock("daily_signin_actions", office, remote)

	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, "Innsjekking registreres automatisk i systemet", false, false),
	)

	return []slack.Block{header, greeting, actions, footer}
}

// isSlackError matches the error code strings the Slack Web API
// returns (the client surfaces them verbatim as the error message).
func isSlackError(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, code := range codes {
		if msg == code {
			return true
		}
	}
	return false
}
