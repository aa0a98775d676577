package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/everdell-tracker/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/everdell-tracker/internal/common/uuid/mocks"
	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/repositories/scoreboard"
	scoreboardMocks "github.com/KirkDiggler/everdell-tracker/internal/repositories/scoreboard/mocks"
	"github.com/KirkDiggler/everdell-tracker/internal/scoresession"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *scoreboardMocks.MockRepository
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	service      Service
	ctx          context.Context
	testTime     time.Time
	testChannel  string
	nextPlayerID int
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = scoreboardMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChannel = "test-channel-id"
	s.nextPlayerID = 0

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextPlayerID++
		return fmt.Sprintf("player-%d", s.nextPlayerID)
	}).AnyTimes()

	svc, err := New(&Config{
		ScoreboardRepo: s.mockRepo,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

// existingSession builds a session with the given number of players and
// makes the repository return it for the test channel.
func (s *TrackerServiceTestSuite) existingSession(players int) *scoresession.Session {
	session, err := scoresession.New(&scoresession.Config{
		UUIDGenerator: s.mockUUID,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	for i := 1; i < players; i++ {
		session.AddPlayer()
	}

	s.mockRepo.EXPECT().
		GetSession(gomock.Any(), &scoreboard.GetSessionInput{ChannelID: s.testChannel}).
		Return(session, nil).
		AnyTimes()

	return session
}

func (s *TrackerServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{ScoreboardRepo: s.mockRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{ScoreboardRepo: s.mockRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *TrackerServiceTestSuite) TestGetBoardStartsSession() {
	s.mockRepo.EXPECT().
		GetSession(gomock.Any(), &scoreboard.GetSessionInput{ChannelID: s.testChannel}).
		Return(nil, scoreboard.ErrSessionNotFound)
	s.mockRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *scoreboard.SaveSessionInput) error {
			s.Equal(s.testChannel, input.ChannelID)
			s.NotNil(input.Session)
			return nil
		})

	out, err := s.service.GetBoard(s.ctx, &GetBoardInput{ChannelID: s.testChannel})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal(s.testChannel, out.Board.ChannelID)
	s.Require().Len(out.Board.Players, 1)
	s.Equal("Player 1", out.Board.Players[0].Name)
	s.False(out.Board.ShowLeader)
	s.True(out.Board.CanAddPlayer)
	s.False(out.Board.CanRemovePlayer)
}

func (s *TrackerServiceTestSuite) TestGetBoardExistingSession() {
	s.existingSession(2)

	out, err := s.service.GetBoard(s.ctx, &GetBoardInput{ChannelID: s.testChannel})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Len(out.Board.Players, 2)
}

func (s *TrackerServiceTestSuite) TestGetBoardRepositoryError() {
	repoErr := errors.New("boom")
	s.mockRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, repoErr)

	_, err := s.service.GetBoard(s.ctx, &GetBoardInput{ChannelID: s.testChannel})
	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
}

func (s *TrackerServiceTestSuite) TestGetBoardSaveError() {
	repoErr := errors.New("full")
	s.mockRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, scoreboard.ErrSessionNotFound)
	s.mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(repoErr)

	_, err := s.service.GetBoard(s.ctx, &GetBoardInput{ChannelID: s.testChannel})
	s.ErrorIs(err, repoErr)
}

func (s *TrackerServiceTestSuite) TestInvalidInput() {
	_, err := s.service.GetBoard(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.AddPlayer(s.ctx, &AddPlayerInput{})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.EndSession(s.ctx, &EndSessionInput{})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *TrackerServiceTestSuite) TestAddPlayerUntilFull() {
	s.existingSession(3)

	out, err := s.service.AddPlayer(s.ctx, &AddPlayerInput{ChannelID: s.testChannel})
	s.Require().NoError(err)
	s.True(out.Added)
	s.Equal("Player 4", out.Player.Name)
	s.Equal(models.ColorPurple, out.Player.Color)
	s.False(out.Board.CanAddPlayer)

	out, err = s.service.AddPlayer(s.ctx, &AddPlayerInput{ChannelID: s.testChannel})
	s.Require().NoError(err)
	s.False(out.Added)
	s.Nil(out.Player)
	s.Len(out.Board.Players, 4)
}

func (s *TrackerServiceTestSuite) TestRemovePlayerByPosition() {
	s.existingSession(3)

	out, err := s.service.RemovePlayer(s.ctx, &RemovePlayerInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{Position: 2},
	})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.Require().Len(out.Board.Players, 2)
	s.Equal("player-1", out.Board.Players[0].ID)
	s.Equal("player-3", out.Board.Players[1].ID)
}

func (s *TrackerServiceTestSuite) TestRemoveLastPlayerIsNoop() {
	s.existingSession(1)

	out, err := s.service.RemovePlayer(s.ctx, &RemovePlayerInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{PlayerID: "player-1"},
	})
	s.Require().NoError(err)
	s.False(out.Removed)
	s.Len(out.Board.Players, 1)
}

func (s *TrackerServiceTestSuite) TestPositionOutOfRange() {
	s.existingSession(2)

	_, err := s.service.RemovePlayer(s.ctx, &RemovePlayerInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{Position: 3},
	})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		ChannelID: s.testChannel,
		Name:      "Nobody",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *TrackerServiceTestSuite) TestRenamePlayer() {
	s.existingSession(2)

	out, err := s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{Position: 2},
		Name:      "Squirrel",
	})
	s.Require().NoError(err)
	s.True(out.Renamed)
	s.Equal("Squirrel", out.Board.Players[1].Name)

	out, err = s.service.RenamePlayer(s.ctx, &RenamePlayerInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{PlayerID: "missing"},
		Name:      "Ghost",
	})
	s.Require().NoError(err)
	s.False(out.Renamed)
}

func (s *TrackerServiceTestSuite) TestAdjustScoreUnknownCategory() {
	_, err := s.service.AdjustScore(s.ctx, &AdjustScoreInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{Position: 1},
		Category:  "acorns",
		Delta:     1,
	})
	s.ErrorIs(err, ErrUnknownCategory)
}

func (s *TrackerServiceTestSuite) TestAdjustScoreAndLeader() {
	s.existingSession(2)

	out, err := s.service.AdjustScore(s.ctx, &AdjustScoreInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{Position: 2},
		Category:  " Events ",
		Delta:     8,
	})
	s.Require().NoError(err)
	s.True(out.Adjusted)
	s.Equal(8, out.Board.Players[1].Scores[models.CategoryEvents])
	s.True(out.Board.ShowLeader)
	s.Equal("player-2", out.Board.Leader.Player.ID)
	s.Equal(8, out.Board.Leader.Total)

	out, err = s.service.AdjustScore(s.ctx, &AdjustScoreInput{
		ChannelID: s.testChannel,
		Player:    PlayerRef{Position: 2},
		Category:  "events",
		Delta:     -20,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Board.Players[1].Scores[models.CategoryEvents])
	s.False(out.Board.ShowLeader)
}

func (s *TrackerServiceTestSuite) TestResetRequiresConfirmation() {
	_, err := s.service.ResetScores(s.ctx, &ResetScoresInput{ChannelID: s.testChannel})
	s.ErrorIs(err, ErrResetNotConfirmed)
}

func (s *TrackerServiceTestSuite) TestResetScores() {
	session := s.existingSession(2)
	players := session.Players()
	session.AdjustScore(players[0].ID, models.CategoryCards, 5)
	session.AdjustScore(players[1].ID, models.CategoryOther, 3)

	out, err := s.service.ResetScores(s.ctx, &ResetScoresInput{
		ChannelID: s.testChannel,
		Confirmed: true,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Board.Players, 2)
	for _, p := range out.Board.Players {
		s.Zero(p.Total())
	}
	s.Equal(players[1].Name, out.Board.Players[1].Name)
}

func (s *TrackerServiceTestSuite) TestEndSession() {
	session := s.existingSession(2)
	session.AdjustScore(session.Players()[0].ID, models.CategoryJourney, 4)

	s.mockRepo.EXPECT().
		DeleteSession(gomock.Any(), &scoreboard.DeleteSessionInput{ChannelID: s.testChannel}).
		Return(nil)

	out, err := s.service.EndSession(s.ctx, &EndSessionInput{ChannelID: s.testChannel})
	s.Require().NoError(err)
	s.Equal(4, out.FinalBoard.Leader.Total)
	s.True(out.FinalBoard.ShowLeader)
}

func (s *TrackerServiceTestSuite) TestEndSessionNotFound() {
	s.mockRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, scoreboard.ErrSessionNotFound)

	_, err := s.service.EndSession(s.ctx, &EndSessionInput{ChannelID: s.testChannel})
	s.ErrorIs(err, ErrSessionNotFound)
}
