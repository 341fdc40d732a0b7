package seeders

import (
	"context"
	"log"

	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/services"
)

type SessionSeeder struct {
	sessions  *services.GameSessionService
	exercises *services.ExerciseService
}

func NewSessionSeeder(sessions *services.GameSessionService, exercises *services.ExerciseService) *SessionSeeder {
	return &SessionSeeder{sessions: sessions, exercises: exercises}
}

// SeedSessions opens one session per player and records a breathing and a
// line walk result in it.
func (s *SessionSeeder) SeedSessions(ctx context.Context, playerIDs map[uint]int) error {
	for playerID, passcode := range playerIDs {
		session, err := s.sessions.CreateSession(ctx, playerID, passcode)
		if err != nil {
			return err
		}

		results := []model.ExerciseResult{
			&model.BreathingTechnique{PlayOrPass: true, Breaths: 12},
			&model.LineWalk{
				PlayOrPass:     true,
				ForwardTime:    14.2,
				BackwardTime:   17.8,
				CrabRightTime:  11.5,
				CrabLeftTime:   12.1,
				OutOfLineCount: 2,
			},
		}
		for _, result := range results {
			if err := s.exercises.WriteResult(ctx, session.SessionID, result); err != nil {
				return err
			}
		}

		log.Printf("Seeded session %d for player %d", session.SessionID, playerID)
	}

	return nil
}
