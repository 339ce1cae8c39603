package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miniauth/backend/internal/model"
	"github.com/miniauth/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Login with username and password
// @Description Issues a signed session token valid for the configured lifetime.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body gets the same 401 as bad credentials.
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{Token: token})
}

// Verify godoc
// @Summary Verify a session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VerifyResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	username, err := h.svc.VerifySession(SessionToken(c))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.VerifyResponse{Valid: true, User: username})
}

func writeAuthError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "server error"})
}
