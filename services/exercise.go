package services

import (
	stdctx "context"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/services/repositories"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sessionNotFound = "Session not found"

// ExerciseService records exercise results. Every kind goes through the same
// path: the session must exist, then exactly one row is inserted.
type ExerciseService struct {
	context.DefaultService

	dbSvc *DatabaseService
}

const EXERCISE_SVC = "exercise_svc"

func (svc ExerciseService) Id() string {
	return EXERCISE_SVC
}

func NewExerciseService(dbSvc *DatabaseService) *ExerciseService {
	return &ExerciseService{dbSvc: dbSvc}
}

func (svc *ExerciseService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ExerciseService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	return nil
}

func (svc *ExerciseService) Shutdown() {}

// WriteResult binds result to sessionID and inserts it. The session lookup
// and the insert share one transaction; any failure leaves no row behind.
func (svc *ExerciseService) WriteResult(ctx stdctx.Context, sessionID uint, result model.ExerciseResult) error {
	err := svc.dbSvc.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := repositories.NewGameSessionRepository(tx).GetGameSessionByID(sessionID); err != nil {
			return err
		}

		model.BindSession(result, sessionID)
		return repositories.NewExerciseRepository(tx).CreateExerciseResult(result)
	})
	if err != nil {
		return svc.dbSvc.HandleError(err, sessionNotFound)
	}

	exerciseResultsRecordedTotal.WithLabelValues(string(result.Kind())).Inc()
	log.WithFields(log.Fields{
		"session_id": sessionID,
		"exercise":   result.Kind(),
	}).Info("Exercise result recorded")
	return nil
}

// GetResult reads back the recorded result of one exercise for a session.
func (svc *ExerciseService) GetResult(ctx stdctx.Context, kind model.ExerciseKind, sessionID uint) (model.ExerciseResult, error) {
	db := svc.dbSvc.WithContext(ctx)

	if _, err := repositories.NewGameSessionRepository(db).GetGameSessionByID(sessionID); err != nil {
		return nil, svc.dbSvc.HandleError(err, sessionNotFound)
	}

	result, err := repositories.NewExerciseRepository(db).GetExerciseResult(kind, sessionID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err, "Exercise result not found")
	}
	return result, nil
}
