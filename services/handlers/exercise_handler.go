package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/rehab_api/dto"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/shared"
)

// ExerciseHandler serves every exercise kind. Routes are built per
// definition, so the only per-kind difference is the request schema decoded.
type ExerciseHandler struct {
	exerciseSvc ExerciseServiceInterface
}

func NewExerciseHandler(exerciseSvc ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseSvc: exerciseSvc,
	}
}

// @Summary Submit Exercise Result
// @Description Records the result of one exercise for an existing session. exercise is one of breathing_techniques, stretch_and_reach, light_hands, rhythm_recovery, draw_shapes, line_walk, balloons
// @Tags exercises
// @Accept  json
// @Produce json
// @Param session_id path int true "Session ID"
// @Param exercise path string true "Exercise"
// @Param result body object true "Exercise specific fields, all required"
// @Success 200 {object} shared.Response{data=dto.ExerciseAckResponse}
// @Failure 400 {object} shared.Response{data=[]dto.ValidationError}
// @Failure 404 {object} shared.Response
// @Failure 500 {object} shared.Response
// @Router /game_sessions/{session_id}/create_{exercise} [post]
func (h *ExerciseHandler) CreateResult(def model.ExerciseDefinition) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := sessionIDParam(c)
		if err != nil {
			return err
		}

		req, err := dto.NewExerciseRequest(def.Kind)
		if err != nil {
			return shared.NewNotFoundError(err, "Unknown exercise")
		}
		if err := c.BodyParser(req); err != nil {
			return shared.NewBadRequestError(err, "Invalid request")
		}

		if err := validate(req); err != nil {
			return err
		}

		if err := h.exerciseSvc.WriteResult(c.UserContext(), sessionID, req.ToModel()); err != nil {
			return err
		}

		return shared.ResponseJSON(c, fiber.StatusOK, def.Ack(), dto.ExerciseAckResponse{
			SessionID: sessionID,
			Exercise:  string(def.Kind),
		})
	}
}

// @Summary Get Exercise Result
// @Description Returns the recorded result of one exercise for a session
// @Tags exercises
// @Produce json
// @Param session_id path int true "Session ID"
// @Param exercise path string true "Exercise"
// @Success 200 {object} shared.Response{data=object}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Failure 500 {object} shared.Response
// @Router /game_sessions/{session_id}/{exercise} [get]
func (h *ExerciseHandler) GetResult(def model.ExerciseDefinition) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := sessionIDParam(c)
		if err != nil {
			return err
		}

		result, err := h.exerciseSvc.GetResult(c.UserContext(), def.Kind, sessionID)
		if err != nil {
			return err
		}

		return shared.ResponseOK(c, result)
	}
}

func sessionIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("session_id")
	if err != nil || id <= 0 {
		return 0, shared.NewBadRequestError(err, "Invalid session id")
	}
	return uint(id), nil
}
