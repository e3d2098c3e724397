// File: internal/application/handler.go
package application

import (
	"errors"
	"net/http"

	"talento_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for application handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new candidate application handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for candidate application operations.
// Submission is public; listing is for admins.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	appGroup := router.Group("/applications")
	{
		appGroup.POST("", h.submit)
		appGroup.GET("", authMW, adminMW, h.list)
	}
}

func (h *Handler) submit(c *gin.Context) {
	// 10 MB cap on the whole multipart form; the CV validator enforces the
	// tighter per-file ceiling.
	if err := c.Request.ParseMultipartForm(10 << 20); err != nil && err != http.ErrNotMultipart {
		h.logger.Warn("Submit application: failed to parse multipart form", zap.Error(err))
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Could not parse the submitted form."))
		return
	}

	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Submit application: invalid form fields", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	// The CV is optional. Validation happens in the service before any
	// storage or database work.
	cv, err := c.FormFile("cv")
	if err != nil {
		cv = nil
	}

	app, err := h.service.Submit(c.Request.Context(), req, cv)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Application submitted successfully.", ToApplicationResponse(app))
}

func (h *Handler) list(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	apps, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, ToApplicationResponse(&apps[i]))
	}
	common.RespondPaginated(c, "Applications retrieved successfully.", responses, pagination)
}
