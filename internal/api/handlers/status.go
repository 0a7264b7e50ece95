package handlers

import (
	"github.com/amaumene/seasonsync/internal/controllers"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// StatusSource exposes the state of the reconciler
type StatusSource interface {
	LastRun() (controllers.PassSummary, bool)
	SkipSetSize() int
}

// StatusHandler handles status requests
type StatusHandler struct {
	source StatusSource
	logger *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(source StatusSource, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		source: source,
		logger: logger,
	}
}

// StatusResponse represents the status response
type StatusResponse struct {
	LastPass    *controllers.PassSummary `json:"last_pass"`
	SkipSetSize int                      `json:"skip_set_size"`
}

// Handle serves the status endpoint
func (h *StatusHandler) Handle(c *fiber.Ctx) error {
	response := StatusResponse{
		SkipSetSize: h.source.SkipSetSize(),
	}

	if summary, ok := h.source.LastRun(); ok {
		response.LastPass = &summary
	}

	return c.JSON(response)
}
