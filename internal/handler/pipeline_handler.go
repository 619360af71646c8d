package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
)

type PipelineHandler struct {
	pipelineService ports.PipelineServiceInterface
}

func NewPipelineHandler(pipelineService ports.PipelineServiceInterface) *PipelineHandler {
	return &PipelineHandler{pipelineService: pipelineService}
}

// @Summary Get the loaded pipeline definition
// @ID getPipeline
// @Tags pipeline
// @Produce json
// @Success 200 {object} domain.Pipeline
// @Router /api/v1/pipeline [get]
func (h *PipelineHandler) GetPipeline(c *fiber.Ctx) error {
	return c.JSON(h.pipelineService.GetPipeline())
}
