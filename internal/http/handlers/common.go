package handlers

import (
	"net/http"
	"sync"

	"tourism/internal/booking"
	"tourism/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	depsMu     sync.RWMutex
	draftStore *booking.Store
	jwtSecret  []byte
)

// SetDraftStore stores the shared draft store for the booking-flow handlers.
func SetDraftStore(s *booking.Store) {
	depsMu.Lock()
	defer depsMu.Unlock()
	draftStore = s
}

// SetJWTSecret stores the signing key used by the auth handlers.
func SetJWTSecret(secret []byte) {
	depsMu.Lock()
	defer depsMu.Unlock()
	jwtSecret = secret
}

func drafts() *booking.Store {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return draftStore
}

func signingKey() []byte {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return jwtSecret
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
