package services

import (
	stdctx "context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/rehab_api/dto"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/services/repositories"
	"github.com/lac-hong-legacy/rehab_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultPasscodeHashCost = 12

// PasscodeService registers players and checks their 4-digit passcodes. Only
// the bcrypt output is stored; the salt lives inside it.
type PasscodeService struct {
	context.DefaultService

	dbSvc *DatabaseService
	cost  int
}

const PASSCODE_SVC = "passcode_svc"

func (svc PasscodeService) Id() string {
	return PASSCODE_SVC
}

func NewPasscodeService(dbSvc *DatabaseService, cost int) *PasscodeService {
	return &PasscodeService{dbSvc: dbSvc, cost: cost}
}

func (svc *PasscodeService) Configure(ctx *context.Context) error {
	svc.cost = DefaultPasscodeHashCost
	if v := os.Getenv("PASSCODE_HASH_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return fmt.Errorf("invalid PASSCODE_HASH_COST %q", v)
		}
		svc.cost = cost
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *PasscodeService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	return nil
}

func (svc *PasscodeService) Shutdown() {}

// Register hashes the passcode and inserts the player in one transaction.
func (svc *PasscodeService) Register(ctx stdctx.Context, firstName, lastName string, passcode int) (uint, error) {
	if !dto.ValidPasscode(passcode) {
		return 0, shared.NewValidationError(nil, "Validation failed", []dto.ValidationError{{
			Field:   "Passcode",
			Message: "Passcode must be a 4-digit number between 1000 and 9999",
		}})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strconv.Itoa(passcode)), svc.cost)
	if err != nil {
		log.WithError(err).Error("Failed to hash passcode")
		return 0, shared.NewInternalError(err, "Failed to register player")
	}

	player := &model.Player{
		FirstName:    firstName,
		LastName:     lastName,
		PasscodeHash: string(hash),
	}

	err = svc.dbSvc.Transaction(ctx, func(tx *gorm.DB) error {
		_, err := repositories.NewPlayerRepository(tx).CreatePlayer(player)
		return err
	})
	if err != nil {
		return 0, svc.dbSvc.HandleError(err, "Player not found")
	}

	playersRegisteredTotal.Inc()
	log.WithField("player_id", player.PlayerID).Info("Player registered")
	return player.PlayerID, nil
}

// Verify confirms that passcode belongs to playerID and returns the id
// unchanged. It does not issue any credential.
func (svc *PasscodeService) Verify(ctx stdctx.Context, playerID uint, passcode int) (uint, error) {
	player, err := repositories.NewPlayerRepository(svc.dbSvc.WithContext(ctx)).GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			passcodeVerificationsTotal.WithLabelValues(outcomeUnknown).Inc()
		}
		return 0, svc.dbSvc.HandleError(err, "Player not found")
	}

	err = bcrypt.CompareHashAndPassword([]byte(player.PasscodeHash), []byte(strconv.Itoa(passcode)))
	if err != nil {
		passcodeVerificationsTotal.WithLabelValues(outcomeMismatch).Inc()
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return 0, shared.NewUnauthorizedError(nil, "Invalid passcode")
		}
		log.WithError(err).WithField("player_id", playerID).Error("Stored passcode hash is unreadable")
		return 0, shared.NewUnauthorizedError(err, "Invalid passcode")
	}

	passcodeVerificationsTotal.WithLabelValues(outcomeVerified).Inc()
	return player.PlayerID, nil
}
