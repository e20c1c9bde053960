package handlers

import (
	"net/http"
	"strconv"

	"tourism/internal/booking"
	"tourism/internal/domain/models"
	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

func destinationService() services.DestinationService {
	return services.DestinationService{}
}

// GET /api/destinations
// Public listing shows active destinations only; authenticated staff see all.
func GetDestinations(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	list, err := destinationService().List(actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": list})
}

// GET /api/destinations/:id
func GetDestinationByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	dest, err := destinationService().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"destination": dest,
		"rates": gin.H{
			"package": dest.UnitPrice,
			"adult":   booking.AdultRate(dest.UnitPrice),
			"child":   booking.ChildRate(dest.UnitPrice),
		},
	})
}

type destinationRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	UnitPrice   float64  `json:"unit_price"`
	GuestsMax   int      `json:"guests_max"`
	TimeSlots   []string `json:"time_slots"`
	Status      string   `json:"status"`
}

// POST /api/destinations (staff/admin)
func CreateDestination(c *gin.Context) {
	var req destinationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := destinationService().Create(models.Destination{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		UnitPrice:   req.UnitPrice,
		GuestsMax:   req.GuestsMax,
		TimeSlots:   req.TimeSlots,
		Status:      req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type destinationUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	UnitPrice   *float64  `json:"unit_price"`
	GuestsMax   *int      `json:"guests_max"`
	TimeSlots   *[]string `json:"time_slots"`
	Status      *string   `json:"status"`
}

// PUT /api/destinations/:id (staff/admin)
func UpdateDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req destinationUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	err = destinationService().Update(id, models.DestinationUpdate{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		UnitPrice:   req.UnitPrice,
		GuestsMax:   req.GuestsMax,
		TimeSlots:   req.TimeSlots,
		Status:      req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "destination updated"})
}

// DELETE /api/destinations/:id (admin)
func DeleteDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	if err := destinationService().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "destination deleted"})
}
