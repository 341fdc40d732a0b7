package dto

type CreatePlayerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100" example:"Ann"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100" example:"Lee"`
	Passcode  int    `json:"passcode" validate:"passcode" example:"4321"`
}

func (r CreatePlayerRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CreatePlayerResponse struct {
	PlayerID uint `json:"player_id" example:"1"`
}
