package model

import "time"

type GameSession struct {
	SessionID uint      `json:"session_id" gorm:"column:session_id;primaryKey"`
	PlayerID  uint      `json:"player_id" gorm:"not null;index:idx_game_sessions_player_time,priority:1"`
	DateTime  time.Time `json:"date_time" gorm:"column:date_time;not null;index:idx_game_sessions_player_time,priority:2"`

	// Declared here, not on the result types, so each exercise table gets a
	// session_id foreign key to game_sessions.
	BreathingTechnique *BreathingTechnique `json:"-" gorm:"foreignKey:SessionID"`
	StretchAndReach    *StretchAndReach    `json:"-" gorm:"foreignKey:SessionID"`
	LightHands         *LightHands         `json:"-" gorm:"foreignKey:SessionID"`
	RhythmRecovery     *RhythmRecovery     `json:"-" gorm:"foreignKey:SessionID"`
	DrawShapes         *DrawShapes         `json:"-" gorm:"foreignKey:SessionID"`
	LineWalk           *LineWalk           `json:"-" gorm:"foreignKey:SessionID"`
	Balloons           *Balloons           `json:"-" gorm:"foreignKey:SessionID"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}
