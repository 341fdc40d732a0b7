package seeders

import (
	"context"
	"log"

	"github.com/lac-hong-legacy/rehab_api/services"
)

type demoPlayer struct {
	FirstName string
	LastName  string
	Passcode  int
}

var demoPlayers = []demoPlayer{
	{FirstName: "Ann", LastName: "Lee", Passcode: 4321},
	{FirstName: "Ben", LastName: "Carter", Passcode: 1234},
	{FirstName: "Chloe", LastName: "Nguyen", Passcode: 9876},
}

type PlayerSeeder struct {
	players *services.PasscodeService
}

func NewPlayerSeeder(players *services.PasscodeService) *PlayerSeeder {
	return &PlayerSeeder{players: players}
}

// SeedPlayers registers every demo player. The result maps player id to the
// passcode it was registered with.
func (s *PlayerSeeder) SeedPlayers(ctx context.Context) (map[uint]int, error) {
	playerIDs := make(map[uint]int, len(demoPlayers))

	for _, p := range demoPlayers {
		id, err := s.players.Register(ctx, p.FirstName, p.LastName, p.Passcode)
		if err != nil {
			return nil, err
		}
		playerIDs[id] = p.Passcode
		log.Printf("Seeded player %d: %s %s (passcode %d)", id, p.FirstName, p.LastName, p.Passcode)
	}

	return playerIDs, nil
}
