package ports

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type HealthHandlerInterface interface {
	Health(c *fiber.Ctx) error
}

type PipelineHandlerInterface interface {
	GetPipeline(c *fiber.Ctx) error
}

type RunHandlerInterface interface {
	ListRuns(c *fiber.Ctx) error
	GetRun(c *fiber.Ctx) error
	GetRunLog(c *fiber.Ctx) error
	CreateRun(c *fiber.Ctx) error
}

type WebhookHandlerInterface interface {
	HandlePush(c *fiber.Ctx) error
}

type WebsocketHandlerInterface interface {
	HandleRunLogs(c *websocket.Conn)
}
