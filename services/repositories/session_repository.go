package repositories

import (
	"time"

	"github.com/lac-hong-legacy/rehab_api/model"
	"gorm.io/gorm"
)

// GameSessionRepository handles game session database operations
type GameSessionRepository struct {
	BaseRepository
}

func NewGameSessionRepository(db *gorm.DB) *GameSessionRepository {
	return &GameSessionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *GameSessionRepository) CreateGameSession(session *model.GameSession) (*model.GameSession, error) {
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (r *GameSessionRepository) GetGameSessionByID(sessionID uint) (*model.GameSession, error) {
	var session model.GameSession
	if err := r.db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// CountPlayerSessionsSince counts sessions created strictly after since.
func (r *GameSessionRepository) CountPlayerSessionsSince(playerID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.GameSession{}).
		Where("player_id = ? AND date_time > ?", playerID, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
