package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/services/tracker"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestLeaderMessageShown() {
	leader := &models.Standing{
		Rank:   1,
		Player: &models.Player{ID: "p1", Name: "Ada"},
		Total:  12,
	}

	out, err := s.service.GetLeaderMessage(s.ctx, &GetLeaderMessageInput{
		Board: &models.Scoreboard{Leader: leader, ShowLeader: true},
	})
	s.Require().NoError(err)
	s.True(out.Show)
	s.Equal("🎉 Ada is Leading!", out.Title)
	s.Equal("with 12 points", out.Message)
	s.NotEmpty(out.Flavor)
	s.Equal(ToneCelebration, out.Tone)
}

func (s *MessagingServiceTestSuite) TestLeaderMessageHidden() {
	leader := &models.Standing{Rank: 1, Player: &models.Player{Name: "Solo"}, Total: 0}

	out, err := s.service.GetLeaderMessage(s.ctx, &GetLeaderMessageInput{
		Board: &models.Scoreboard{Leader: leader, ShowLeader: false},
	})
	s.Require().NoError(err)
	s.False(out.Show)
	s.Empty(out.Title)

	_, err = s.service.GetLeaderMessage(s.ctx, &GetLeaderMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestScoringGuide() {
	out, err := s.service.GetScoringGuide(s.ctx, &GetScoringGuideInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sections, 2)
	s.Equal("Point Sources", out.Sections[0].Title)
	s.Len(out.Sections[0].Entries, 5)
	s.Equal("Basic Events", out.Sections[0].Entries[3].Name)
	s.Equal("3 points each", out.Sections[0].Entries[3].Detail)
	s.Len(out.Categories, 5)
}

func (s *MessagingServiceTestSuite) TestResetConfirmation() {
	out, err := s.service.GetResetConfirmation(s.ctx, &GetResetConfirmationInput{PlayerCount: 3})
	s.Require().NoError(err)
	s.Equal("Reset all scores?", out.Title)
	s.Contains(out.Message, "every player")
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: fmt.Errorf("%w: %q", tracker.ErrUnknownCategory, "acorns"),
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "prosperity")
	s.Equal(ToneNeutral, out.Tone)

	out, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tracker.ErrSessionNotFound})
	s.Require().NoError(err)
	s.Contains(out.Message, "/everdell board")

	out, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: errors.New("boom")})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
	s.Equal(ToneFunny, out.Tone)
}

func (s *MessagingServiceTestSuite) TestConcurrentCallsShareGenerator() {
	board := &models.Scoreboard{
		Leader: &models.Standing{
			Rank:   1,
			Player: &models.Player{ID: "p1", Name: "Ada"},
			Total:  3,
		},
		ShowLeader: true,
	}

	const workers = 8
	errs := make(chan error, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := s.service.GetLeaderMessage(s.ctx, &GetLeaderMessageInput{Board: board}); err != nil {
					errs <- err
					return
				}
				if _, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: errors.New("boom")}); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
}
