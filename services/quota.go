package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/rehab_api/services/repositories"
	"github.com/lac-hong-legacy/rehab_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultSessionQuota       = 20
	DefaultSessionQuotaWindow = time.Hour
)

// SessionQuotaService caps how many sessions one player may start within a
// trailing window. The count is recomputed from game_sessions on every call.
type SessionQuotaService struct {
	context.DefaultService

	dbSvc  *DatabaseService
	clock  shared.Clock
	limit  int
	window time.Duration
}

const SESSION_QUOTA_SVC = "session_quota_svc"

func (svc SessionQuotaService) Id() string {
	return SESSION_QUOTA_SVC
}

func NewSessionQuotaService(dbSvc *DatabaseService, clock shared.Clock, limit int, window time.Duration) *SessionQuotaService {
	return &SessionQuotaService{dbSvc: dbSvc, clock: clock, limit: limit, window: window}
}

func (svc *SessionQuotaService) Configure(ctx *context.Context) error {
	if svc.clock == nil {
		svc.clock = shared.RealClock{}
	}

	svc.limit = DefaultSessionQuota
	if v := os.Getenv("SESSION_QUOTA_PER_HOUR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid SESSION_QUOTA_PER_HOUR %q", v)
		}
		svc.limit = n
	}

	svc.window = DefaultSessionQuotaWindow
	if v := os.Getenv("SESSION_QUOTA_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid SESSION_QUOTA_WINDOW %q", v)
		}
		svc.window = d
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *SessionQuotaService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	return nil
}

func (svc *SessionQuotaService) Shutdown() {}

// checkQuota fails with a rate-limit error when the player already has limit
// or more sessions newer than now-window. db may be an open transaction.
func (svc *SessionQuotaService) checkQuota(db *gorm.DB, playerID uint) error {
	since := svc.clock.Now().Add(-svc.window)

	count, err := repositories.NewGameSessionRepository(db).CountPlayerSessionsSince(playerID, since)
	if err != nil {
		return svc.dbSvc.HandleError(err, "Player not found")
	}

	if count >= int64(svc.limit) {
		admissionRejectionsTotal.WithLabelValues(reasonSessionQuota).Inc()
		log.WithFields(log.Fields{
			"player_id": playerID,
			"sessions":  count,
			"window":    svc.window.String(),
		}).Warn("Session quota exceeded")
		return shared.NewTooManyRequestsError(nil, "Session limit reached. Please try again later.")
	}

	return nil
}
