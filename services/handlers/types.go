package handlers

import (
	"context"

	"github.com/lac-hong-legacy/rehab_api/model"
)

type PlayerServiceInterface interface {
	Register(ctx context.Context, firstName, lastName string, passcode int) (uint, error)
}

type GameSessionServiceInterface interface {
	CreateSession(ctx context.Context, playerID uint, passcode int) (*model.GameSession, error)
}

type ExerciseServiceInterface interface {
	WriteResult(ctx context.Context, sessionID uint, result model.ExerciseResult) error
	GetResult(ctx context.Context, kind model.ExerciseKind, sessionID uint) (model.ExerciseResult, error)
}
