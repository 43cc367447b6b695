package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/db/models"
	"github.com/citizenhub/backend/internal/services"
)

// AuthHandler serves the passwordless email login. Real deployments
// would put OTP or OAuth in front of this.
type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With(zap.String("handler", "auth")),
	}
}

type loginRequest struct {
	Email             string          `json:"email"`
	Name              string          `json:"name"`
	PreferredLanguage models.Language `json:"preferred_language"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	result, err := ah.auth.Login(c.Request.Context(), req.Email, req.Name, req.PreferredLanguage)
	if err != nil {
		ah.logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		Email: result.Email,
		Name:  result.Name,
	})
}
