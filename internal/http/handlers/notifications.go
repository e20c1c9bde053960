package handlers

import (
	"net/http"
	"strconv"

	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
func GetNotifications(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	svc := services.NotificationService{RequestID: middleware.GetRequestID(c)}
	list, err := svc.ListForUser(actor.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	actor := middleware.GetRequestContext(c)
	svc := services.NotificationService{RequestID: middleware.GetRequestID(c)}
	if err := svc.MarkRead(id, actor.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
