package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/lac-hong-legacy/rehab_api/docs"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/services/handlers"
	"github.com/lac-hong-legacy/rehab_api/shared"
	log "github.com/sirupsen/logrus"
)

type HttpService struct {
	context.DefaultService

	port        int
	proxyHeader string
	app         *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.proxyHeader = os.Getenv("TRUSTED_PROXY_HEADER")

	return svc.DefaultService.Configure(ctx)
}

// Start blocks serving HTTP, so this service is registered last.
func (svc *HttpService) Start() error {
	svc.app = NewApp(AppDependencies{
		RateLimiter:  svc.Service(RATE_LIMIT_SVC).(*RateLimitService),
		Players:      svc.Service(PASSCODE_SVC).(*PasscodeService),
		GameSessions: svc.Service(GAME_SESSION_SVC).(*GameSessionService),
		Exercises:    svc.Service(EXERCISE_SVC).(*ExerciseService),
		Monitoring:   svc.Service(MONITORING_SVC).(*MonitoringService),
		ProxyHeader:  svc.proxyHeader,
	})

	log.WithField("port", svc.port).Info("HTTP server starting")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

type AppDependencies struct {
	RateLimiter  *RateLimitService
	Players      handlers.PlayerServiceInterface
	GameSessions handlers.GameSessionServiceInterface
	Exercises    handlers.ExerciseServiceInterface

	// Optional. Request metrics are skipped when nil.
	Monitoring *MonitoringService

	// Header carrying the client address when running behind a proxy. Empty
	// means the socket address is used.
	ProxyHeader string
}

// NewApp builds the fiber application with every route. It is separate from
// Start so tests can drive it through app.Test.
func NewApp(deps AppDependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               SERVICE_NAME,
		DisableStartupMessage: true,
		JSONEncoder:           shared.JSONMarshal,
		JSONDecoder:           shared.JSONUnmarshal,
		ProxyHeader:           deps.ProxyHeader,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(RequestLogger())
	if deps.Monitoring != nil {
		app.Use(MonitoringMiddleware(deps.Monitoring))
	}
	app.Use(cors.New())

	healthHandler := handlers.NewHealthHandler()
	playerHandler := handlers.NewPlayerHandler(deps.Players)
	gameSessionHandler := handlers.NewGameSessionHandler(deps.GameSessions)
	exerciseHandler := handlers.NewExerciseHandler(deps.Exercises)

	app.Get("/", healthHandler.Root)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Post("/create_player",
		deps.RateLimiter.RateLimit(shared.EndpointCreatePlayer),
		playerHandler.CreatePlayer)
	app.Post("/create_game_session",
		deps.RateLimiter.RateLimit(shared.EndpointCreateGameSession),
		gameSessionHandler.CreateGameSession)

	sessions := app.Group("/game_sessions/:session_id")
	for _, def := range model.ExerciseDefinitions() {
		sessions.Post("/create_"+string(def.Kind), exerciseHandler.CreateResult(def))
		sessions.Get("/"+string(def.Kind), exerciseHandler.GetResult(def))
	}

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	return app
}

// ErrorHandler turns errors returned by handlers into the response envelope.
// Storage faults never reach the client verbatim.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if errors.Is(appErr, shared.ErrStorage) {
			return shared.ResponseInternalError(c)
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return shared.ResponseJSON(c, fe.Code, fe.Message, nil)
	}

	log.WithError(err).Error("Unhandled error")
	return shared.ResponseInternalError(c)
}
