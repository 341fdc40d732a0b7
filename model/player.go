package model

import "time"

type Player struct {
	PlayerID     uint      `json:"player_id" gorm:"column:player_id;primaryKey"`
	FirstName    string    `json:"first_name" gorm:"not null;size:100"`
	LastName     string    `json:"last_name" gorm:"not null;size:100"`
	PasscodeHash string    `json:"-" gorm:"not null;size:72"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`

	GameSessions []GameSession `json:"-" gorm:"foreignKey:PlayerID"`
}

func (Player) TableName() string {
	return "players"
}
