package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stevedore-dev/stevedore/cmd/server/web/middlewares"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

type Server struct {
	corsMiddleware             fiber.Handler
	headerMiddleware           fiber.Handler
	tokenMiddleware            fiber.Handler
	webhookSignatureMiddleware fiber.Handler
	healthHandler              ports.HealthHandlerInterface
	pipelineHandler            ports.PipelineHandlerInterface
	runHandler                 ports.RunHandlerInterface
	webhookHandler             ports.WebhookHandlerInterface
	websocketHandler           ports.WebsocketHandlerInterface
}

func NewServer(
	apiToken string,
	webhookSecret string,
	healthHandler ports.HealthHandlerInterface,
	pipelineHandler ports.PipelineHandlerInterface,
	runHandler ports.RunHandlerInterface,
	webhookHandler ports.WebhookHandlerInterface,
	websocketHandler ports.WebsocketHandlerInterface,
) *Server {
	return &Server{
		corsMiddleware: cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}),
		headerMiddleware:           middlewares.NewHeaderMiddleware(),
		tokenMiddleware:            middlewares.TokenAuthentication(apiToken),
		webhookSignatureMiddleware: middlewares.WebhookSignature(webhookSecret),
		healthHandler:              healthHandler,
		pipelineHandler:            pipelineHandler,
		runHandler:                 runHandler,
		webhookHandler:             webhookHandler,
		websocketHandler:           websocketHandler,
	}
}

func (s *Server) Initialize() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				return ctx.Status(code).JSON(e)
			}
			var wrapped fiber.Error
			wrapped.Code = code
			wrapped.Message = err.Error()
			return ctx.Status(code).JSON(wrapped)
		},
		DisableStartupMessage: true,
	})

	s.SetAPI(app)

	return app
}

func (s *Server) SetAPI(app *fiber.App) *fiber.App {
	app.Use(s.headerMiddleware)

	wsRoutes := app.Group("/ws/v1")
	v1 := app.Use(s.corsMiddleware).Group("/api/v1")
	hookRoutes := app.Group("/hooks")

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler())).Name("metrics")

	v1.Get("/health", s.healthHandler.Health).Name("health")

	apiRoutes := v1.Group("/", s.tokenMiddleware)

	apiRoutes.Get("/pipeline", s.pipelineHandler.GetPipeline).Name("pipeline.get")

	apiRoutes.Get("/runs", s.runHandler.ListRuns).Name("runs.list")
	apiRoutes.Post("/runs", s.runHandler.CreateRun).Name("runs.create")
	apiRoutes.Get("/runs/:id", s.runHandler.GetRun).Name("runs.get")
	apiRoutes.Get("/runs/:id/log", s.runHandler.GetRunLog).Name("runs.log")

	hookRoutes.Post("/github", s.webhookSignatureMiddleware, s.webhookHandler.HandlePush).Name("hooks.github")

	wsRoutes.Get("/runs/:id/logs", websocket.New(s.websocketHandler.HandleRunLogs)).Name("ws.runs.logs")

	return app
}

func (s *Server) Serve(app *fiber.App, port int) error {
	logger.Log().Info("Starting API server", zap.Int("port", port))
	return app.Listen(fmt.Sprintf(":%d", port))
}
