package services

import (
	"context"
	"testing"
	"time"

	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/shared"
	"github.com/stretchr/testify/suite"
)

type GameSessionSuite struct {
	suite.Suite
	svcs     *testServices
	ctx      context.Context
	playerID uint
}

func TestGameSessionSuite(t *testing.T) {
	suite.Run(t, new(GameSessionSuite))
}

func (s *GameSessionSuite) SetupTest() {
	s.svcs = newTestServices(s.T())
	s.ctx = context.Background()

	id, err := s.svcs.passcodes.Register(s.ctx, "Ann", "Lee", 4321)
	s.Require().NoError(err)
	s.playerID = id
}

func (s *GameSessionSuite) createSessions(n int, spacing time.Duration) {
	for i := 0; i < n; i++ {
		_, err := s.svcs.sessions.CreateSession(s.ctx, s.playerID, 4321)
		s.Require().NoError(err)
		s.svcs.clock.Advance(spacing)
	}
}

func (s *GameSessionSuite) TestCreateSessionStampsServerTime() {
	session, err := s.svcs.sessions.CreateSession(s.ctx, s.playerID, 4321)
	s.Require().NoError(err)

	s.NotZero(session.SessionID)
	s.Equal(s.playerID, session.PlayerID)
	s.True(testEpoch.Equal(session.DateTime))

	var stored model.GameSession
	s.Require().NoError(s.svcs.db.First(&stored, session.SessionID).Error)
	s.True(testEpoch.Equal(stored.DateTime.UTC()))
}

func (s *GameSessionSuite) TestUnknownPlayerIsNotFoundRegardlessOfPasscode() {
	for _, passcode := range []int{4321, 1234} {
		_, err := s.svcs.sessions.CreateSession(s.ctx, 999, passcode)
		s.ErrorIs(err, shared.ErrNotFound)
	}
	s.Zero(countRows(s.T(), s.svcs.db, "game_sessions"))
}

func (s *GameSessionSuite) TestWrongPasscodeIsUnauthorized() {
	_, err := s.svcs.sessions.CreateSession(s.ctx, s.playerID, 1111)
	s.ErrorIs(err, shared.ErrUnauthorized)
	s.Zero(countRows(s.T(), s.svcs.db, "game_sessions"))
}

func (s *GameSessionSuite) TestTwentyFirstSessionInAnHourIsRateLimited() {
	s.createSessions(20, time.Minute)

	_, err := s.svcs.sessions.CreateSession(s.ctx, s.playerID, 4321)
	s.ErrorIs(err, shared.ErrRateLimited)
	s.Equal(int64(20), countRows(s.T(), s.svcs.db, "game_sessions"))
}

func (s *GameSessionSuite) TestQuotaFreesUpWhenOldestSessionAges() {
	s.createSessions(20, time.Minute)

	// The first session was stamped at testEpoch. Just past an hour later it
	// no longer counts.
	s.svcs.clock.Set(testEpoch.Add(time.Hour + time.Second))

	_, err := s.svcs.sessions.CreateSession(s.ctx, s.playerID, 4321)
	s.Require().NoError(err)

	_, err = s.svcs.sessions.CreateSession(s.ctx, s.playerID, 4321)
	s.ErrorIs(err, shared.ErrRateLimited)
}

func (s *GameSessionSuite) TestQuotaIsPerPlayer() {
	s.createSessions(20, 0)

	otherID, err := s.svcs.passcodes.Register(s.ctx, "Ben", "Carter", 1234)
	s.Require().NoError(err)

	_, err = s.svcs.sessions.CreateSession(s.ctx, otherID, 1234)
	s.NoError(err)
}

func (s *GameSessionSuite) TestWrongPasscodeDoesNotRevealQuota() {
	s.createSessions(20, 0)

	_, err := s.svcs.sessions.CreateSession(s.ctx, s.playerID, 1111)
	s.ErrorIs(err, shared.ErrUnauthorized)
	s.NotErrorIs(err, shared.ErrRateLimited)
}

func (s *GameSessionSuite) TestQuotaCountsOnlyTrailingWindow() {
	quota := NewSessionQuotaService(s.svcs.dbSvc, s.svcs.clock, 2, 10*time.Minute)

	// Sessions at +0m and +3m, clock left at +6m.
	s.createSessions(2, 3*time.Minute)
	s.ErrorIs(quota.checkQuota(s.svcs.db.WithContext(s.ctx), s.playerID), shared.ErrRateLimited)

	s.svcs.clock.Advance(5 * time.Minute)
	s.NoError(quota.checkQuota(s.svcs.db.WithContext(s.ctx), s.playerID))
}
