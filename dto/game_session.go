package dto

type CreateGameSessionRequest struct {
	PlayerID uint `query:"player_id" validate:"required,gt=0" example:"1"`
	Passcode int  `query:"passcode" validate:"passcode" example:"4321"`
}

func (r CreateGameSessionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CreateGameSessionResponse struct {
	SessionID uint `json:"session_id" example:"1"`
}

type ExerciseAckResponse struct {
	SessionID uint   `json:"session_id" example:"1"`
	Exercise  string `json:"exercise" example:"breathing_techniques"`
}
