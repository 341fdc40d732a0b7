package services

import (
	stdctx "context"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/services/repositories"
	"github.com/lac-hong-legacy/rehab_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type GameSessionService struct {
	context.DefaultService

	dbSvc       *DatabaseService
	passcodeSvc *PasscodeService
	quotaSvc    *SessionQuotaService
	clock       shared.Clock
}

const GAME_SESSION_SVC = "game_session_svc"

func (svc GameSessionService) Id() string {
	return GAME_SESSION_SVC
}

func NewGameSessionService(dbSvc *DatabaseService, passcodeSvc *PasscodeService, quotaSvc *SessionQuotaService, clock shared.Clock) *GameSessionService {
	return &GameSessionService{
		dbSvc:       dbSvc,
		passcodeSvc: passcodeSvc,
		quotaSvc:    quotaSvc,
		clock:       clock,
	}
}

func (svc *GameSessionService) Configure(ctx *context.Context) error {
	if svc.clock == nil {
		svc.clock = shared.RealClock{}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameSessionService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.passcodeSvc = svc.Service(PASSCODE_SVC).(*PasscodeService)
	svc.quotaSvc = svc.Service(SESSION_QUOTA_SVC).(*SessionQuotaService)
	return nil
}

func (svc *GameSessionService) Shutdown() {}

// CreateSession verifies the passcode, then checks the player's quota, then
// inserts the session. The quota is only consulted for a verified caller so
// an unknown caller learns nothing about another player's activity.
func (svc *GameSessionService) CreateSession(ctx stdctx.Context, playerID uint, passcode int) (*model.GameSession, error) {
	verifiedID, err := svc.passcodeSvc.Verify(ctx, playerID, passcode)
	if err != nil {
		return nil, err
	}

	session := &model.GameSession{PlayerID: verifiedID}

	err = svc.dbSvc.Transaction(ctx, func(tx *gorm.DB) error {
		if err := svc.quotaSvc.checkQuota(tx, verifiedID); err != nil {
			return err
		}

		session.DateTime = svc.clock.Now()
		_, err := repositories.NewGameSessionRepository(tx).CreateGameSession(session)
		return err
	})
	if err != nil {
		return nil, svc.dbSvc.HandleError(err, "Player not found")
	}

	gameSessionsCreatedTotal.Inc()
	log.WithFields(log.Fields{
		"player_id":  verifiedID,
		"session_id": session.SessionID,
	}).Info("Game session created")
	return session, nil
}
