package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/rehab_api/dto"
	"github.com/lac-hong-legacy/rehab_api/shared"
)

type GameSessionHandler struct {
	gameSessionSvc GameSessionServiceInterface
}

func NewGameSessionHandler(gameSessionSvc GameSessionServiceInterface) *GameSessionHandler {
	return &GameSessionHandler{
		gameSessionSvc: gameSessionSvc,
	}
}

// @Summary Create Game Session
// @Description Verifies the player's passcode and opens a new play session, subject to the hourly session quota
// @Tags game_sessions
// @Produce json
// @Param player_id query int true "Player ID"
// @Param passcode query int true "4-digit passcode"
// @Success 200 {object} shared.Response{data=dto.CreateGameSessionResponse}
// @Failure 400 {object} shared.Response{data=[]dto.ValidationError}
// @Failure 401 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Failure 500 {object} shared.Response
// @Router /create_game_session [post]
func (h *GameSessionHandler) CreateGameSession(c *fiber.Ctx) error {
	var req dto.CreateGameSessionRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := validate(req); err != nil {
		return err
	}

	session, err := h.gameSessionSvc.CreateSession(c.UserContext(), req.PlayerID, req.Passcode)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.CreateGameSessionResponse{SessionID: session.SessionID})
}
