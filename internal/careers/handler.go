// File: internal/careers/handler.go
package careers

import (
	"time"

	"talento_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for careers handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new careers handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for the careers catalog. All routes
// are public.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	careersGroup := router.Group("/careers")
	{
		careersGroup.GET("/jobs", h.listJobs)
		careersGroup.GET("/jobs/:id", h.getJob)
	}
	router.GET("/site/links", h.siteLinks)
}

func (h *Handler) listJobs(c *gin.Context) {
	jobs := h.service.List(time.Now())
	common.RespondOK(c, "Job postings retrieved successfully.", jobs)
}

func (h *Handler) getJob(c *gin.Context) {
	id := c.Param("id")
	job, err := h.service.Get(id, time.Now())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Job posting retrieved successfully.", job)
}

func (h *Handler) siteLinks(c *gin.Context) {
	common.RespondOK(c, "Site links retrieved successfully.", h.service.SiteLinks())
}
