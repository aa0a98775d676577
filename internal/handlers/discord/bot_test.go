package discord

import (
	"testing"

	"github.com/KirkDiggler/everdell-tracker/internal/services/messaging"
	trackerMocks "github.com/KirkDiggler/everdell-tracker/internal/services/tracker/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockTracker *trackerMocks.MockService
	msgService  messaging.Service
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)

	msgService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)
	s.msgService = msgService
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{TrackerService: s.mockTracker, MessagingService: s.msgService})
	s.Error(err)

	_, err = New(&Config{Token: "token", MessagingService: s.msgService})
	s.Error(err)

	_, err = New(&Config{Token: "token", TrackerService: s.mockTracker})
	s.Error(err)
}

func (s *BotTestSuite) TestHandlersAreReadyBeforeStart() {
	bot, err := New(&Config{
		Token:            "token",
		TrackerService:   s.mockTracker,
		MessagingService: s.msgService,
	})
	s.Require().NoError(err)

	cmd, ok := bot.commands["everdell"]
	s.Require().True(ok)

	handler, ok := cmd.(ComponentHandler)
	s.Require().True(ok)
	s.True(handler.HandlesComponent(ButtonConfirmReset))
	s.Empty(bot.commandIDs)
}
