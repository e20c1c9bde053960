package handlers

import (
	"net/http"
	"strconv"

	"tourism/internal/http/middleware"
	"tourism/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/wishlist
func GetWishlist(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	repo := repositories.WishlistRepository{}
	list, err := repo.ListByUser(actor.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": list})
}

// POST /api/wishlist/:destinationId
func AddToWishlist(c *gin.Context) {
	destID, err := strconv.ParseInt(c.Param("destinationId"), 10, 64)
	if err != nil || destID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid destination id", err)
		return
	}

	// The destination must exist; inactive ones can still be wished for.
	if _, err := destinationService().Get(destID); err != nil {
		RespondDomainError(c, err)
		return
	}

	actor := middleware.GetRequestContext(c)
	repo := repositories.WishlistRepository{}
	if err := repo.Add(actor.UserID, destID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "added to wishlist"})
}

// DELETE /api/wishlist/:destinationId
func RemoveFromWishlist(c *gin.Context) {
	destID, err := strconv.ParseInt(c.Param("destinationId"), 10, 64)
	if err != nil || destID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid destination id", err)
		return
	}
	actor := middleware.GetRequestContext(c)
	repo := repositories.WishlistRepository{}
	if err := repo.Remove(actor.UserID, destID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}
