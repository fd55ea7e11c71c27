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

type signInService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
}

func newSignIn(dm contract.DataManager, slackClient contract.SlackClient) *signInService {
	return &signInService{
		dm:          dm,
		slackClient: slackClient,
	}
}

// RegisterButtonClick handles one decoded sign-in button click. The
// clicking user always gets a response; failures are logged and never
// propagate, so one bad intake cannot affect the next.
func (s *signInService) RegisterButtonClick(click entity.ButtonClick) {
	if click.Action == entity.ActionUnknown {
		// Other interactive elements share the event stream.
		log.Printf("Ignoring unrecognized button action from user %s", click.UserID)
		return
	}

	signInType := domain.SignInTypeFor(click.Action)

	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	exists, err := s.dm.SignIn().Exists(click.UserID, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("Failed to check existing sign-in for user %s (%s): %v", click.UserID, signInType, err)
		s.respond(click, "Beklager, en feil oppstod under lagring av innsjekking.")
		return
	}
	if exists {
		log.Printf("User %s (%s) tried to sign in again today", click.Username, click.UserID)
		s.respond(click, "Du har allerede logget inn i dag.")
		return
	}

	entry := &entity.SignIn{
		UserID:     click.UserID,
		Username:   s.resolveUsername(click),
		Timestamp:  now,
		SignInType: signInType,
	}

	if err := s.dm.SignIn().Create(entry); err != nil {
		log.Printf("Failed to save sign-in for user %s (%s): %v", click.UserID, signInType, err)
		s.respond(click, "Beklager, en feil oppstod under lagring av innsjekking.")
		return
	}

	log.Printf("User %s (%s) signed in as %s", entry.Username, entry.UserID, signInType)
	s.respond(click, fmt.Sprintf("Du er nå logget inn (%s)!", signInType))
}

// ListForDate returns all sign-ins for the UTC day containing date.
func (s *signInService) ListForDate(date time.Time) ([]*entity.SignIn, error) {
	from, to := dayWindowUTC(date)

	entries, err := s.dm.SignIn().ListByPeriod(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sign-ins: %w", err)
	}
	return entries, nil
}

// DeleteForDate removes a user's sign-ins for the UTC day containing
// date and returns how many records were deleted.
func (s *signInService) DeleteForDate(userID string, date time.Time) (int64, error) {
	from, to := dayWindowUTC(date)

	count, err := s.dm.SignIn().DeleteByUserAndPeriod(userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sign-ins: %w", err)
	}

	if count > 0 {
		log.Printf("Deleted %d sign-in(s) for user %s on %s", count, userID, from.Format("2006-01-02"))
	}
	return count, nil
}

// resolveUsername prefers the profile display name the way Slack
// renders it, falling back to the payload name when the lookup fails.
func (s *signInService) resolveUsername(click entity.ButtonClick) string {
	userInfo, err := s.slackClient.GetUserInfo(click.UserID)
	if err != nil {
		log.Printf("Failed to get user info for %s, using payload name: %v", click.UserID, err)
		return truncate(click.Username, domain.MaxUsernameLen)
	}

	name := userInfo.Profile.DisplayName
	if name == "" {
		name = userInfo.Profile.RealName
	}
	if name == "" {
		name = userInfo.Name
	}
	return truncate(name, domain.MaxUsernameLen)
}

func (s *signInService) respond(click entity.ButtonClick, text string) {
	if _, err := s.slackClient.PostEphemeral(click.ChannelID, click.UserID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("Failed to send response to user %s: %v", click.UserID, err)
	}
}

func dayWindowUTC(date time.Time) (from, to time.Time) {
	d := date.UTC()
	from = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 1)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
