package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/stevedore-dev/stevedore/internal/api"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

type WebhookHandler struct {
	pipelineService ports.PipelineServiceInterface
	fetcher         ports.SourceFetcherInterface
}

func NewWebhookHandler(pipelineService ports.PipelineServiceInterface, fetcher ports.SourceFetcherInterface) *WebhookHandler {
	return &WebhookHandler{
		pipelineService: pipelineService,
		fetcher:         fetcher,
	}
}

// @Summary GitHub push webhook
// @ID handlePush
// @Tags hooks
// @Accept json
// @Produce json
// @Success 202 {object} string
// @Failure 400 {object} api.ErrorResponse
// @Router /hooks/github [post]
func (h *WebhookHandler) HandlePush(c *fiber.Ctx) error {
	if event := c.Get("X-GitHub-Event"); event != "" && event != "push" {
		return c.Status(fiber.StatusAccepted).SendString("ignored")
	}

	var event domain.PushEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "invalid push payload",
		})
	}

	if event.Deleted {
		return c.Status(fiber.StatusAccepted).SendString("ignored branch deletion")
	}

	ref, ok := refFromPush(&event)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "unsupported ref " + event.Ref,
		})
	}

	cloneURL := event.Repository.CloneURL
	if cloneURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "push payload carries no clone url",
		})
	}

	logger.Log().Info("Push event accepted",
		zap.String("repository", event.Repository.FullName),
		zap.String("ref", ref.Name),
		zap.String("sha", ref.ShortSHA()),
	)

	// the checkout can take a while, GitHub expects a fast response
	go h.runFromPush(cloneURL, ref)

	return c.Status(fiber.StatusAccepted).SendString("accepted")
}

func (h *WebhookHandler) runFromPush(cloneURL string, ref *domain.GitRef) {
	ctx := context.Background()

	dir, err := h.fetcher.Fetch(ctx, cloneURL, ref.SHA)
	if err != nil {
		logger.Log().Error("Failed to fetch source for webhook run", zap.Error(err))
		return
	}
	defer h.fetcher.Cleanup(dir)

	_, err = h.pipelineService.Run(ctx, domain.RunOptions{
		Trigger: domain.RunTriggerWebhook,
		Dir:     dir,
		Ref:     ref,
		Push:    true,
	})
	if err != nil {
		logger.Log().Error("Webhook triggered run failed", zap.Error(err))
	}
}

func refFromPush(event *domain.PushEvent) (*domain.GitRef, bool) {
	ref := &domain.GitRef{SHA: event.After}
	switch {
	case strings.HasPrefix(event.Ref, "refs/heads/"):
		ref.Type = domain.RefTypeBranch
		ref.Name = strings.TrimPrefix(event.Ref, "refs/heads/")
	case strings.HasPrefix(event.Ref, "refs/tags/"):
		ref.Type = domain.RefTypeTag
		ref.Name = strings.TrimPrefix(event.Ref, "refs/tags/")
	default:
		return nil, false
	}
	return ref, true
}
