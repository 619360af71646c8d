package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stevedore-dev/stevedore/internal/api"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

type RunHandler struct {
	pipelineService ports.PipelineServiceInterface
	runManager      ports.RunManagerInterface
}

func NewRunHandler(pipelineService ports.PipelineServiceInterface, runManager ports.RunManagerInterface) *RunHandler {
	return &RunHandler{
		pipelineService: pipelineService,
		runManager:      runManager,
	}
}

// @Summary List runs, newest first
// @ID listRuns
// @Tags runs
// @Produce json
// @Success 200 {array} domain.PipelineRun
// @Router /api/v1/runs [get]
func (h *RunHandler) ListRuns(c *fiber.Ctx) error {
	return c.JSON(h.runManager.List())
}

// @Summary Get a single run
// @ID getRun
// @Tags runs
// @Produce json
// @Success 200 {object} domain.PipelineRun
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/runs/{id} [get]
func (h *RunHandler) GetRun(c *fiber.Ctx) error {
	run, err := h.runManager.Get(c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(run)
}

// @Summary Get the captured log of a run
// @ID getRunLog
// @Tags runs
// @Produce json
// @Success 200 {object} api.RunLogResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/runs/{id}/log [get]
func (h *RunHandler) GetRunLog(c *fiber.Ctx) error {
	lines, err := h.runManager.GetLog(c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(api.RunLogResponse{Lines: lines})
}

// @Summary Trigger a run
// @ID createRun
// @Tags runs
// @Accept json
// @Produce json
// @Success 202 {object} api.RunCreatedResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/v1/runs [post]
func (h *RunHandler) CreateRun(c *fiber.Ctx) error {
	var req api.CreateRunRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
				Status: "error",
				Error:  "invalid request body",
			})
		}
	}

	opts := domain.RunOptions{
		Targets: req.Targets,
		Trigger: domain.RunTriggerManual,
		Push:    req.Push,
		DryRun:  req.DryRun,
	}

	run, err := h.pipelineService.Start(context.Background(), opts)
	if err != nil {
		logger.Log().Error("Failed to start run", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(api.RunCreatedResponse{ID: run.ID})
}

func notFound(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, domain.ErrRunNotFound) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(api.ErrorResponse{
		Status: "error",
		Error:  err.Error(),
	})
}
