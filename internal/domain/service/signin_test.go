package service

import (
	"strings"
	"testing"
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_signInService_RegisterButtonClick(t *testing.T) {
	click := entity.ButtonClick{
		UserID:    "U123456789",
		Username:  "payload-name",
		ChannelID: "C123456789",
		Action:    entity.ActionOffice,
	}

	t.Run("Should register an office sign-in and confirm to the user", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		m.mockSignInRepo.EXPECT().
			Exists(click.UserID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(userID string, from, to time.Time) (bool, error) {
				require.Equal(t, time.UTC, from.Location())
				require.Equal(t, from.AddDate(0, 0, 1), to)
				return false, nil
			}).Times(1)

		m.mockSlackClient.EXPECT().
			GetUserInfo(click.UserID).
			Return(&slack.User{
				Name:    "slack-name",
				Profile: slack.UserProfile{DisplayName: "Ola Nordmann"},
			}, nil).Times(1)

		m.mockSignInRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *entity.SignIn) error {
				entry.ID = 1
				require.Equal(t, click.UserID, entry.UserID)
				require.Equal(t, "Ola Nordmann", entry.Username)
				require.Equal(t, domain.SignInTypeOffice, entry.SignInType)
				require.Equal(t, time.UTC, entry.Timestamp.Location())
				return nil
			}).Times(1)

		m.mockSlackClient.EXPECT().
			PostEphemeral(click.ChannelID, click.UserID, gomock.Any()).
			Return("", nil).Times(1)

		s.RegisterButtonClick(click)
	})

	t.Run("Should tell the user when they already signed in today", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		m.mockSignInRepo.EXPECT().
			Exists(click.UserID, gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		m.mockSlackClient.EXPECT().
			PostEphemeral(click.ChannelID, click.UserID, gomock.Any()).
			Return("", nil).Times(1)

		s.RegisterButtonClick(click)
	})

	t.Run("Should apologize when the duplicate check fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		m.mockSignInRepo.EXPECT().
			Exists(click.UserID, gomock.Any(), gomock.Any()).
			Return(false, assert.AnError).Times(1)

		m.mockSlackClient.EXPECT().
			PostEphemeral(click.ChannelID, click.UserID, gomock.Any()).
			Return("", nil).Times(1)

		s.RegisterButtonClick(click)
	})

	t.Run("Should apologize when saving fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		m.mockSignInRepo.EXPECT().
			Exists(click.UserID, gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)

		m.mockSlackClient.EXPECT().
			GetUserInfo(click.UserID).
			Return(&slack.User{Name: "slack-name"}, nil).Times(1)

		m.mockSignInRepo.EXPECT().
			Create(gomock.Any()).
			Return(assert.AnError).Times(1)

		m.mockSlackClient.EXPECT().
			PostEphemeral(click.ChannelID, click.UserID, gomock.Any()).
			Return("", nil).Times(1)

		s.RegisterButtonClick(click)
	})

	t.Run("Should fall back to the payload name when the user lookup fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		m.mockSignInRepo.EXPECT().
			Exists(click.UserID, gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)

		m.mockSlackClient.EXPECT().
			GetUserInfo(click.UserID).
			Return(nil, assert.AnError).Times(1)

		m.mockSignInRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *entity.SignIn) error {
				require.Equal(t, "payload-name", entry.Username)
				return nil
			}).Times(1)

		m.mockSlackClient.EXPECT().
			PostEphemeral(click.ChannelID, click.UserID, gomock.Any()).
			Return("", nil).Times(1)

		s.RegisterButtonClick(click)
	})

	t.Run("Should record the remote type for the home office button", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		remoteClick := click
		remoteClick.Action = entity.ActionRemote

		m.mockSignInRepo.EXPECT().
			Exists(remoteClick.UserID, gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)

		m.mockSlackClient.EXPECT().
			GetUserInfo(remoteClick.UserID).
			Return(&slack.User{Name: "slack-name"}, nil).Times(1)

		m.mockSignInRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *entity.SignIn) error {
				require.Equal(t, domain.SignInTypeRemote, entry.SignInType)
				return nil
			}).Times(1)

		m.mockSlackClient.EXPECT().
			PostEphemeral(remoteClick.ChannelID, remoteClick.UserID, gomock.Any()).
			Return("", nil).Times(1)

		s.RegisterButtonClick(remoteClick)
	})

	t.Run("Should ignore unrecognized actions entirely", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		unknownClick := click
		unknownClick.Action = entity.ActionUnknown

		// No repository or Slack calls expected.
		s.RegisterButtonClick(unknownClick)
	})
}

func Test_signInService_ListForDate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newSignIn(m.mockDataManager, m.mockSlackClient)

	date := time.Date(2025, 12, 15, 14, 30, 0, 0, time.UTC)
	from := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	want := []*entity.SignIn{
		{ID: 1, UserID: "U123456789", Username: "Ola", SignInType: domain.SignInTypeOffice},
		{ID: 2, UserID: "U987654321", Username: "Kari", SignInType: domain.SignInTypeRemote},
	}

	m.mockSignInRepo.EXPECT().ListByPeriod(from, to).Return(want, nil).Times(1)

	got, err := s.ListForDate(date)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_signInService_DeleteForDate(t *testing.T) {
	t.Run("Should delete within the UTC day window", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		date := time.Date(2025, 12, 15, 23, 59, 0, 0, time.UTC)
		from := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

		m.mockSignInRepo.EXPECT().
			DeleteByUserAndPeriod("U123456789", from, from.AddDate(0, 0, 1)).
			Return(int64(1), nil).Times(1)

		count, err := s.DeleteForDate("U123456789", date)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Should propagate repository errors", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newSignIn(m.mockDataManager, m.mockSlackClient)

		m.mockSignInRepo.EXPECT().
			DeleteByUserAndPeriod(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), assert.AnError).Times(1)

		_, err := s.DeleteForDate("U123456789", time.Now())
		require.Error(t, err)
	})
}

func Test_truncate(t *testing.T) {
	long := strings.Repeat("a", domain.MaxUsernameLen+10)

	assert.Len(t, truncate(long, domain.MaxUsernameLen), domain.MaxUsernameLen)
	assert.Equal(t, "short", truncate("short", domain.MaxUsernameLen))
}
