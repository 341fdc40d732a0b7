package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/rehab_api/dto"
	"github.com/lac-hong-legacy/rehab_api/shared"
)

type PlayerHandler struct {
	playerSvc PlayerServiceInterface
}

func NewPlayerHandler(playerSvc PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
	}
}

// @Summary Create Player
// @Description Registers a player with a 4-digit passcode and returns the generated player id
// @Tags players
// @Accept  json
// @Produce json
// @Param createPlayerRequest body dto.CreatePlayerRequest true "Create player request"
// @Success 200 {object} shared.Response{data=dto.CreatePlayerResponse}
// @Failure 400 {object} shared.Response{data=[]dto.ValidationError}
// @Failure 429 {object} shared.Response
// @Failure 500 {object} shared.Response
// @Router /create_player [post]
func (h *PlayerHandler) CreatePlayer(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := validate(req); err != nil {
		return err
	}

	playerID, err := h.playerSvc.Register(c.UserContext(), req.FirstName, req.LastName, req.Passcode)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.CreatePlayerResponse{PlayerID: playerID})
}
