package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miniauth/backend/internal/model"
	"github.com/miniauth/backend/internal/service"
)

type UsersHandler struct {
	svc *service.AuthService
}

func NewUsersHandler(svc *service.AuthService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// ListUsers godoc
// @Summary List all users
// @Description Any authenticated user may list; password hashes are never included.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UsersResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /users [get]
func (h *UsersHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context(), SessionToken(c))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.UsersResponse{Users: users})
}
