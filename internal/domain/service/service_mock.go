package service

import (
	"testing"

	"github.com/morningbot/morning-signin-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockSignInRepo   *mocks.MockSignInRepo
	mockScheduleRepo *mocks.MockScheduleRepo
	mockSlackClient  *mocks.MockSlackClient
	mockMessageStore *mocks.MockMessageStore
	mockCalendar     *mocks.MockCalendar
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	signInRepo := mocks.NewMockSignInRepo(ctrl)
	dm.EXPECT().SignIn().Return(signInRepo).AnyTimes()

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	messageStore := mocks.NewMockMessageStore(ctrl)
	calendar := mocks.NewMockCalendar(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockSignInRepo:   signInRepo,
		mockScheduleRepo: scheduleRepo,
		mockSlackClient:  slackClient,
		mockMessageStore: messageStore,
		mockCalendar:     calendar,
	}

	// validate service creation
	signInService := newSignIn(dm, slackClient)
	require.NotNil(t, signInService)

	return
}
