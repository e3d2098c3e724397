// File: internal/contact/handler.go
package contact

import (
	"errors"

	"talento_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for contact form handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new contact form handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for contact form operations.
// Submission is public; listing is for admins.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	contactGroup := router.Group("/contact-forms")
	{
		contactGroup.POST("", h.submit)
		contactGroup.GET("", authMW, adminMW, h.list)
	}
}

func (h *Handler) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Submit contact form: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	form, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Contact form submitted successfully.", ToContactFormResponse(form))
}

func (h *Handler) list(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	forms, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]ContactFormResponse, 0, len(forms))
	for i := range forms {
		responses = append(responses, ToContactFormResponse(&forms[i]))
	}
	common.RespondPaginated(c, "Contact forms retrieved successfully.", responses, pagination)
}
