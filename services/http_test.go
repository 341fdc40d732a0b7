package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type HttpSuite struct {
	suite.Suite
	svcs *testServices
	app  *fiber.App
}

func TestHttpSuite(t *testing.T) {
	suite.Run(t, new(HttpSuite))
}

func (s *HttpSuite) SetupTest() {
	s.svcs = newTestServices(s.T())
	s.app = NewApp(AppDependencies{
		RateLimiter:  NewRateLimitService(NewMemoryCounterStore(s.svcs.clock), s.svcs.clock),
		Players:      s.svcs.passcodes,
		GameSessions: s.svcs.sessions,
		Exercises:    s.svcs.exercises,
		ProxyHeader:  "X-Real-IP",
	})
}

func (s *HttpSuite) do(method, target, body, ip string) (int, envelope) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if ip == "" {
		ip = "192.0.2.1"
	}
	req.Header.Set("X-Real-IP", ip)

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env envelope
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func (s *HttpSuite) TestEndToEndRegisterSessionAndBreathing() {
	status, env := s.do(fiber.MethodPost, "/create_player", `{"first_name":"Ann","last_name":"Lee","passcode":4321}`, "")
	s.Require().Equal(fiber.StatusOK, status)
	s.JSONEq(`{"player_id":1}`, string(env.Data))

	status, env = s.do(fiber.MethodPost, "/create_game_session?player_id=1&passcode=4321", "", "")
	s.Require().Equal(fiber.StatusOK, status)
	s.JSONEq(`{"session_id":1}`, string(env.Data))

	status, env = s.do(fiber.MethodPost, "/game_sessions/1/create_breathing_techniques", `{"play_or_pass":true,"breaths":12}`, "")
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("Breathing technique record created", env.Message)

	var rows []model.BreathingTechnique
	s.Require().NoError(s.svcs.db.Find(&rows).Error)
	s.Require().Len(rows, 1)
	s.Equal(model.BreathingTechnique{SessionID: 1, PlayOrPass: true, Breaths: 12}, rows[0])

	status, env = s.do(fiber.MethodGet, "/game_sessions/1/breathing_techniques", "", "")
	s.Require().Equal(fiber.StatusOK, status)
	s.JSONEq(`{"session_id":1,"play_or_pass":true,"breaths":12}`, string(env.Data))
}

func (s *HttpSuite) TestGreeting() {
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := s.app.Test(req)
	s.Require().NoError(err)

	body, _ := io.ReadAll(resp.Body)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.JSONEq(`{"message":"Hello World"}`, string(body))
}

func (s *HttpSuite) TestCreatePlayerValidation() {
	status, env := s.do(fiber.MethodPost, "/create_player", `{"first_name":"Ann","last_name":"Lee","passcode":123}`, "")
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("Validation failed", env.Message)
	s.Contains(string(env.Data), "Passcode")

	status, _ = s.do(fiber.MethodPost, "/create_player", `{"first_name":`, "")
	s.Equal(fiber.StatusBadRequest, status)

	s.Zero(countRows(s.T(), s.svcs.db, "players"))
}

func (s *HttpSuite) TestCreatePlayerAddressLimit() {
	body := `{"first_name":"Ann","last_name":"Lee","passcode":4321}`
	for i := 0; i < 5; i++ {
		status, _ := s.do(fiber.MethodPost, "/create_player", body, "198.51.100.7")
		s.Require().Equal(fiber.StatusOK, status)
	}

	status, env := s.do(fiber.MethodPost, "/create_player", body, "198.51.100.7")
	s.Equal(fiber.StatusTooManyRequests, status)
	s.Equal(fiber.StatusTooManyRequests, env.Code)

	status, _ = s.do(fiber.MethodPost, "/create_player", body, "198.51.100.8")
	s.Equal(fiber.StatusOK, status)

	s.Equal(int64(6), countRows(s.T(), s.svcs.db, "players"))
}

func (s *HttpSuite) TestRateLimitAppliesBeforeValidation() {
	for i := 0; i < 5; i++ {
		status, _ := s.do(fiber.MethodPost, "/create_player", `{"passcode":1}`, "")
		s.Require().Equal(fiber.StatusBadRequest, status)
	}

	status, _ := s.do(fiber.MethodPost, "/create_player", `{"passcode":1}`, "")
	s.Equal(fiber.StatusTooManyRequests, status)
}

func (s *HttpSuite) TestCreateGameSessionErrors() {
	_, err := s.svcs.passcodes.Register(s.T().Context(), "Ann", "Lee", 4321)
	s.Require().NoError(err)

	cases := []struct {
		target string
		status int
	}{
		{"/create_game_session?player_id=1&passcode=1111", fiber.StatusUnauthorized},
		{"/create_game_session?player_id=2&passcode=4321", fiber.StatusNotFound},
		{"/create_game_session?player_id=1&passcode=12", fiber.StatusBadRequest},
		{"/create_game_session?player_id=abc&passcode=4321", fiber.StatusBadRequest},
		{"/create_game_session?passcode=4321", fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		status, _ := s.do(fiber.MethodPost, tc.target, "", "")
		s.Equal(tc.status, status, tc.target)
	}
	s.Zero(countRows(s.T(), s.svcs.db, "game_sessions"))
}

func (s *HttpSuite) TestSessionQuotaOverHTTP() {
	_, err := s.svcs.passcodes.Register(s.T().Context(), "Ann", "Lee", 4321)
	s.Require().NoError(err)

	// Spread the requests over addresses so only the quota applies.
	for i := 0; i < 20; i++ {
		ip := fmt.Sprintf("203.0.113.%d", i+1)
		status, _ := s.do(fiber.MethodPost, "/create_game_session?player_id=1&passcode=4321", "", ip)
		s.Require().Equal(fiber.StatusOK, status, i)
	}

	status, env := s.do(fiber.MethodPost, "/create_game_session?player_id=1&passcode=4321", "", "203.0.113.250")
	s.Equal(fiber.StatusTooManyRequests, status)
	s.Equal("Session limit reached. Please try again later.", env.Message)
}

func (s *HttpSuite) TestExerciseForMissingSession() {
	body := `{"play_or_pass":true,"forward_time":1.5,"backward_time":2,"crab_right_time":3,"crab_left_time":4,"out_of_line_count":0}`
	status, env := s.do(fiber.MethodPost, "/game_sessions/5/create_line_walk", body, "")
	s.Equal(fiber.StatusNotFound, status)
	s.Equal("Session not found", env.Message)
	s.Zero(countRows(s.T(), s.svcs.db, "line_walk"))

	status, _ = s.do(fiber.MethodPost, "/game_sessions/zero/create_line_walk", `{}`, "")
	s.Equal(fiber.StatusBadRequest, status)
}

func (s *HttpSuite) TestEveryExerciseRouteIsMounted() {
	_, err := s.svcs.passcodes.Register(s.T().Context(), "Ann", "Lee", 4321)
	s.Require().NoError(err)
	status, _ := s.do(fiber.MethodPost, "/create_game_session?player_id=1&passcode=4321", "", "")
	s.Require().Equal(fiber.StatusOK, status)

	for _, def := range model.ExerciseDefinitions() {
		// Every field present with its zero value.
		body, err := json.Marshal(def.New())
		s.Require().NoError(err)

		status, env := s.do(fiber.MethodPost, "/game_sessions/1/create_"+string(def.Kind), string(body), "")
		s.Equal(fiber.StatusOK, status, def.Kind)
		s.Equal(def.Ack(), env.Message)
	}
}

func (s *HttpSuite) TestStorageFaultIsNotLeaked() {
	sqlDB, err := s.svcs.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	status, env := s.do(fiber.MethodPost, "/create_player", `{"first_name":"Ann","last_name":"Lee","passcode":4321}`, "")
	s.Equal(fiber.StatusInternalServerError, status)
	s.Equal("Internal Server Error", env.Message)
	s.Empty(env.Data)
}

func (s *HttpSuite) TestUnknownRoute() {
	status, _ := s.do(fiber.MethodGet, "/nope", "", "")
	s.Equal(fiber.StatusNotFound, status)
}

func (s *HttpSuite) TestExerciseWithMissingFieldsWritesNothing() {
	_, err := s.svcs.passcodes.Register(s.T().Context(), "Ann", "Lee", 4321)
	s.Require().NoError(err)
	status, _ := s.do(fiber.MethodPost, "/create_game_session?player_id=1&passcode=4321", "", "")
	s.Require().Equal(fiber.StatusOK, status)

	for _, body := range []string{`{}`, `{"play_or_pass":true}`, `{"play_or_pass":true,"breaths":null}`} {
		status, env := s.do(fiber.MethodPost, "/game_sessions/1/create_breathing_techniques", body, "")
		s.Equal(fiber.StatusBadRequest, status, body)
		s.Equal("Validation failed", env.Message, body)
		s.Contains(string(env.Data), "Breaths", body)
	}
	s.Zero(countRows(s.T(), s.svcs.db, "breathing_techniques"))

	status, _ = s.do(fiber.MethodGet, "/game_sessions/1/breathing_techniques", "", "")
	s.Equal(fiber.StatusNotFound, status)
}
