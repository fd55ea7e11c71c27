package service

import (
	"errors"
	"testing"
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotifierTest(t *testing.T) (*notifierService, allMocks, *gomock.Controller) {
	t.Helper()

	m, ctrl := newServiceTestMock(t)
	n := newNotifier(m.mockDataManager, m.mockSlackClient, m.mockMessageStore, m.mockCalendar)
	require.NotNil(t, n)
	return n, m, ctrl
}

func Test_notifierService_SendDailySignIn(t *testing.T) {
	cfg := &entity.ScheduleConfig{ID: 1, SignInHour: 8, SignInMinute: 0, TargetChannelID: "C123456789"}

	t.Run("Should delete the previous message before sending the new one", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		prev := &entity.MessageState{ChannelID: "C123456789", MessageTS: "1700000000.000100"}

		gomock.InOrder(
			m.mockMessageStore.EXPECT().Load().Return(prev, nil),
			m.mockSlackClient.EXPECT().DeleteMessage(prev.ChannelID, prev.MessageTS).Return("", "", nil),
			m.mockMessageStore.EXPECT().Clear().Return(nil),
			m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false),
			m.mockScheduleRepo.EXPECT().Get().Return(cfg, nil),
			m.mockSlackClient.EXPECT().
				PostMessage(cfg.TargetChannelID, gomock.Any()).
				Return(cfg.TargetChannelID, "1700086400.000200", nil),
			m.mockMessageStore.EXPECT().
				Save(entity.MessageState{ChannelID: cfg.TargetChannelID, MessageTS: "1700086400.000200"}).
				Return(nil),
		)

		require.NoError(t, n.SendDailySignIn())
	})

	t.Run("Should send without deleting when no previous message is tracked", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		m.mockMessageStore.EXPECT().Load().Return(nil, nil)
		m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false)
		m.mockScheduleRepo.EXPECT().Get().Return(cfg, nil)
		m.mockSlackClient.EXPECT().
			PostMessage(cfg.TargetChannelID, gomock.Any()).
			Return(cfg.TargetChannelID, "1700086400.000200", nil)
		m.mockMessageStore.EXPECT().Save(gomock.Any()).Return(nil)

		require.NoError(t, n.SendDailySignIn())
	})

	t.Run("Should clear stale state when the message is already gone", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		prev := &entity.MessageState{ChannelID: "C123456789", MessageTS: "1700000000.000100"}

		m.mockMessageStore.EXPECT().Load().Return(prev, nil)
		m.mockSlackClient.EXPECT().
			DeleteMessage(prev.ChannelID, prev.MessageTS).
			Return("", "", errors.New("message_not_found"))
		m.mockMessageStore.EXPECT().Clear().Return(nil)
		m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false)
		m.mockScheduleRepo.EXPECT().Get().Return(cfg, nil)
		m.mockSlackClient.EXPECT().
			PostMessage(cfg.TargetChannelID, gomock.Any()).
			Return(cfg.TargetChannelID, "1700086400.000200", nil)
		m.mockMessageStore.EXPECT().Save(gomock.Any()).Return(nil)

		require.NoError(t, n.SendDailySignIn())
	})

	t.Run("Should keep state on permission failure and still send", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		prev := &entity.MessageState{ChannelID: "C123456789", MessageTS: "1700000000.000100"}

		// Clear must NOT be called: the state is kept for a retry. The
		// delete attempt still strictly precedes the send.
		gomock.InOrder(
			m.mockMessageStore.EXPECT().Load().Return(prev, nil),
			m.mockSlackClient.EXPECT().
				DeleteMessage(prev.ChannelID, prev.MessageTS).
				Return("", "", errors.New("cant_delete_message")),
			m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false),
			m.mockScheduleRepo.EXPECT().Get().Return(cfg, nil),
			m.mockSlackClient.EXPECT().
				PostMessage(cfg.TargetChannelID, gomock.Any()).
				Return(cfg.TargetChannelID, "1700086400.000200", nil),
			m.mockMessageStore.EXPECT().Save(gomock.Any()).Return(nil),
		)

		require.NoError(t, n.SendDailySignIn())
	})

	t.Run("Should skip sending on non-working days", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		m.mockMessageStore.EXPECT().Load().Return(nil, nil)
		m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(true)

		require.NoError(t, n.SendDailySignIn())
	})

	t.Run("Should return error when no channel is configured", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		m.mockMessageStore.EXPECT().Load().Return(nil, nil)
		m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false)
		m.mockScheduleRepo.EXPECT().Get().Return(nil, nil)

		require.Error(t, n.SendDailySignIn())
	})

	t.Run("Should return error and save nothing when sending fails", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		m.mockMessageStore.EXPECT().Load().Return(nil, nil)
		m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false)
		m.mockScheduleRepo.EXPECT().Get().Return(cfg, nil)
		m.mockSlackClient.EXPECT().
			PostMessage(cfg.TargetChannelID, gomock.Any()).
			Return("", "", errors.New("channel_not_found"))

		require.Error(t, n.SendDailySignIn())
	})

	t.Run("Should succeed even when saving the message state fails", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		m.mockMessageStore.EXPECT().Load().Return(nil, nil)
		m.mockCalendar.EXPECT().IsNonWorkingDay(gomock.Any()).Return(false)
		m.mockScheduleRepo.EXPECT().Get().Return(cfg, nil)
		m.mockSlackClient.EXPECT().
			PostMessage(cfg.TargetChannelID, gomock.Any()).
			Return(cfg.TargetChannelID, "1700086400.000200", nil)
		m.mockMessageStore.EXPECT().Save(gomock.Any()).Return(assert.AnError)

		require.NoError(t, n.SendDailySignIn())
	})
}

func Test_notifierService_deletePreviousMessage(t *testing.T) {
	t.Run("Should keep state on unknown delete errors", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		prev := &entity.MessageState{ChannelID: "C123456789", MessageTS: "1700000000.000100"}

		m.mockMessageStore.EXPECT().Load().Return(prev, nil)
		m.mockSlackClient.EXPECT().
			DeleteMessage(prev.ChannelID, prev.MessageTS).
			Return("", "", errors.New("some transient failure"))

		n.deletePreviousMessage()
	})

	t.Run("Should do nothing when loading state fails", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		m.mockMessageStore.EXPECT().Load().Return(nil, assert.AnError)

		n.deletePreviousMessage()
	})

	t.Run("Should clear stale state when the channel is gone", func(t *testing.T) {
		n, m, ctrl := newNotifierTest(t)
		defer ctrl.Finish()

		prev := &entity.MessageState{ChannelID: "C999999999", MessageTS: "1700000000.000100"}

		m.mockMessageStore.EXPECT().Load().Return(prev, nil)
		m.mockSlackClient.EXPECT().
			DeleteMessage(prev.ChannelID, prev.MessageTS).
			Return("", "", errors.New("channel_not_found"))
		m.mockMessageStore.EXPECT().Clear().Return(nil)

		n.deletePreviousMessage()
	})
}

func Test_buildSignInBlocks(t *testing.T) {
	blocks := buildSignInBlocks(time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC))

	require.Len(t, blocks, 4)
}

func Test_isSlackError(t *testing.T) {
	assert.True(t, isSlackError(errors.New("message_not_found"), "message_not_found"))
	assert.True(t, isSlackError(errors.New("restricted_action"), "cant_delete_message", "restricted_action"))
	assert.False(t, isSlackError(errors.New("something else"), "message_not_found"))
	assert.False(t, isSlackError(nil, "message_not_found"))
}
