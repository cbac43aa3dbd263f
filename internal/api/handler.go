package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cwi-systems/website/internal/metrics"
)

// greetingHTML is served verbatim on the landing route.
const greetingHTML = "<h1>Hello World™</h1>"

// SiteHandler serves the site's HTTP routes.
type SiteHandler struct {
	logger  *zap.Logger
	service string
	started time.Time
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(logger *zap.Logger, service string) *SiteHandler {
	return &SiteHandler{
		logger:  logger,
		service: service,
		started: time.Now(),
	}
}

// ReturnHTTP serves the static HTML greeting.
func (h *SiteHandler) ReturnHTTP(c *fiber.Ctx) error {
	metrics.IncHTTPRequest("/return_http", fiber.StatusOK)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(greetingHTML)
}

// Health reports service liveness and uptime.
func (h *SiteHandler) Health(c *fiber.Ctx) error {
	metrics.IncHTTPRequest("/health", fiber.StatusOK)
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": h.service,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
