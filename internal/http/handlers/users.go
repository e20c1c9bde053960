package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tourism/internal/domain"
	"tourism/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/users (admin)
func GetUsers(c *gin.Context) {
	repo := repositories.UserRepository{}
	users, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type roleUpdateRequest struct {
	Role string `json:"role"`
}

// PUT /api/users/:id/role (admin)
func UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req roleUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case domain.RoleTourist, domain.RoleStaff, domain.RoleAdmin:
	default:
		RespondError(c, http.StatusBadRequest, "unknown role", nil)
		return
	}

	repo := repositories.UserRepository{}
	if err := repo.UpdateRole(id, role); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}
