package repositories

import (
	"github.com/lac-hong-legacy/rehab_api/model"
	"gorm.io/gorm"
)

type PlayerRepository struct {
	BaseRepository
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *PlayerRepository) CreatePlayer(player *model.Player) (*model.Player, error) {
	if err := r.db.Create(player).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// GetPlayerByID returns gorm.ErrRecordNotFound when no player has the id.
func (r *PlayerRepository) GetPlayerByID(playerID uint) (*model.Player, error) {
	var player model.Player
	if err := r.db.Where("player_id = ?", playerID).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}
