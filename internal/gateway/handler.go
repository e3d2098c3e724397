// File: internal/gateway/handler.go
package gateway

import (
	"errors"
	"net/http"

	"talento_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler exposes the auth operations over HTTP. These routes speak the
// gateway envelope directly: the HTTP status is 200 as long as the request
// itself was readable, and the outcome lives in the envelope's success flag.
type Handler struct {
	gateway *Gateway
	logger  *zap.Logger
}

// NewHandler creates a new gateway handler.
func NewHandler(gw *Gateway, logger *zap.Logger) *Handler {
	return &Handler{gateway: gw, logger: logger}
}

// RegisterRoutes sets up the auth routes. Sign-up, sign-in, password reset
// and session lookup are public; sign-out and account updates require a
// verified session.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signUp)
		authGroup.POST("/signin", h.signIn)
		authGroup.POST("/reset-password", h.resetPassword)
		authGroup.GET("/me", h.currentUser)
		authGroup.POST("/signout", authMW, h.signOut)
		authGroup.PATCH("/password", authMW, h.updatePassword)
		authGroup.PATCH("/email", authMW, h.updateEmail)
	}
}

// SignUpRequest carries the public registration fields.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
}

// SignInRequest carries the Firebase ID token minted by the client SDK.
type SignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// ResetPasswordRequest carries the address to send a reset email to.
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest carries the new account password.
type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdateEmailRequest carries the new account email.
type UpdateEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req SignUpRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.gateway.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName))
}

func (h *Handler) signIn(c *gin.Context) {
	var req SignInRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.gateway.SignIn(c.Request.Context(), req.IDToken))
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.gateway.ResetPasswordForEmail(c.Request.Context(), req.Email))
}

func (h *Handler) currentUser(c *gin.Context) {
	token := common.GetTokenFromContext(c)
	c.JSON(http.StatusOK, h.gateway.GetCurrentUser(c.Request.Context(), token))
}

func (h *Handler) signOut(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, h.gateway.SignOut(c.Request.Context(), userID))
}

func (h *Handler) updatePassword(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	var req UpdatePasswordRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.gateway.UpdateUserPassword(c.Request.Context(), userID, req.NewPassword))
}

func (h *Handler) updateEmail(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	var req UpdateEmailRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.gateway.UpdateUserEmail(c.Request.Context(), userID, req.NewEmail))
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("Invalid auth request body", zap.String("path", c.FullPath()), zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}
