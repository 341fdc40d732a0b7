package seeders

import (
	"context"
	"log"

	"github.com/lac-hong-legacy/rehab_api/services"
	"github.com/lac-hong-legacy/rehab_api/shared"
)

// MainSeeder coordinates all seeding operations. It writes through the same
// services the API uses, so passcodes are hashed and quotas apply.
type MainSeeder struct {
	players   *services.PasscodeService
	sessions  *services.GameSessionService
	exercises *services.ExerciseService
}

func NewMainSeeder(dbSvc *services.DatabaseService, hashCost int) *MainSeeder {
	clock := shared.RealClock{}
	players := services.NewPasscodeService(dbSvc, hashCost)
	quota := services.NewSessionQuotaService(dbSvc, clock, services.DefaultSessionQuota, services.DefaultSessionQuotaWindow)

	return &MainSeeder{
		players:   players,
		sessions:  services.NewGameSessionService(dbSvc, players, quota, clock),
		exercises: services.NewExerciseService(dbSvc),
	}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll(ctx context.Context) error {
	log.Println("Starting database seeding...")

	playerIDs, err := s.SeedPlayersOnly(ctx)
	if err != nil {
		return err
	}

	sessionSeeder := NewSessionSeeder(s.sessions, s.exercises)
	if err := sessionSeeder.SeedSessions(ctx, playerIDs); err != nil {
		log.Printf("Session seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedPlayersOnly registers the demo players and returns their ids keyed by
// passcode.
func (s *MainSeeder) SeedPlayersOnly(ctx context.Context) (map[uint]int, error) {
	playerSeeder := NewPlayerSeeder(s.players)
	playerIDs, err := playerSeeder.SeedPlayers(ctx)
	if err != nil {
		log.Printf("Player seeding failed: %v", err)
		return nil, err
	}
	return playerIDs, nil
}
