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

func bookingService(c *gin.Context) services.BookingService {
	reqID := middleware.GetRequestID(c)
	return services.BookingService{
		Notify:    services.NotificationService{RequestID: reqID},
		RequestID: reqID,
	}
}

type createDraftRequest struct {
	DestinationID int64 `json:"destination_id"`
}

// POST /api/bookings/drafts
// Opens the three-step booking flow for a destination.
func CreateDraft(c *gin.Context) {
	var req createDraftRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.DestinationID <= 0 {
		RespondError(c, http.StatusBadRequest, "destination_id is required", nil)
		return
	}

	dest, err := destinationService().Get(req.DestinationID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !dest.IsActive() {
		RespondError(c, http.StatusConflict, "destination is not accepting bookings", nil)
		return
	}

	actor := middleware.GetRequestContext(c)
	d := drafts().Create(actor.UserID, dest)
	c.JSON(http.StatusCreated, gin.H{"draft": d})
}

// GET /api/bookings/drafts/:token
func GetDraft(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	d, err := drafts().Get(c.Param("token"), actor.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

type draftUpdateRequest struct {
	SelectedDate  *string           `json:"selected_date"`
	SelectedTime  *string           `json:"selected_time"`
	BookingType   *string           `json:"booking_type"`
	Contact       *booking.Contact  `json:"contact"`
	Consents      *booking.Consents `json:"consents"`
	PaymentMethod *string           `json:"payment_method"`
}

// PUT /api/bookings/drafts/:token
// PATCH-style update based on key presence. The computed total is always
// derived server-side; a total sent by the client is ignored.
func UpdateDraft(c *gin.Context) {
	var req draftUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	actor := middleware.GetRequestContext(c)
	d, err := drafts().Update(c.Param("token"), actor.UserID, func(d *booking.Draft) error {
		if req.BookingType != nil {
			if err := d.SetType(models.BookingType(*req.BookingType)); err != nil {
				return err
			}
		}
		if req.SelectedDate != nil {
			if err := d.SetDate(*req.SelectedDate); err != nil {
				return err
			}
		}
		if req.SelectedTime != nil {
			if err := d.SetTimeSlot(*req.SelectedTime); err != nil {
				return err
			}
		}
		if req.Contact != nil {
			d.SetContact(*req.Contact)
		}
		if req.Consents != nil {
			d.SetConsents(*req.Consents)
		}
		if req.PaymentMethod != nil {
			if err := d.SetPaymentMethod(models.PaymentMethod(*req.PaymentMethod)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

type guestChangeRequest struct {
	AdultsDelta   int `json:"adults_delta"`
	ChildrenDelta int `json:"children_delta"`
}

// POST /api/bookings/drafts/:token/guests
// Applies a +/- guest change through the allocation policy. A rejected
// change leaves the previous counts untouched.
func AdjustDraftGuests(c *gin.Context) {
	var req guestChangeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	actor := middleware.GetRequestContext(c)
	d, err := drafts().Update(c.Param("token"), actor.UserID, func(d *booking.Draft) error {
		return d.AdjustGuests(req.AdultsDelta, req.ChildrenDelta)
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// POST /api/bookings/drafts/:token/continue
// Runs the current step's gate. Passing the step-3 gate performs the
// submission and returns the created booking.
func ContinueDraft(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	svc := bookingService(c)

	var created models.Booking
	submitted := false
	d, err := drafts().Update(c.Param("token"), actor.UserID, func(d *booking.Draft) error {
		ready, err := d.Continue()
		if err != nil {
			return err
		}
		if !ready {
			return nil
		}
		b, err := svc.Submit(d, actor)
		if err != nil {
			return err
		}
		created = b
		submitted = true
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if submitted {
		c.JSON(http.StatusCreated, gin.H{"draft": d, "booking": created})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// POST /api/bookings/drafts/:token/back
// Unconditional back navigation; a no-op at step 1.
func BackDraft(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	d, err := drafts().Update(c.Param("token"), actor.UserID, func(d *booking.Draft) error {
		d.Back()
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	actor := middleware.GetRequestContext(c)
	list, err := bookingService(c).ListFor(actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	actor := middleware.GetRequestContext(c)
	b, err := bookingService(c).Get(id, actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// PUT /api/bookings/:id/confirm (staff/admin)
func ConfirmBooking(c *gin.Context) {
	bookingTransition(c, "confirm")
}

// PUT /api/bookings/:id/cancel (staff/admin)
func CancelBooking(c *gin.Context) {
	bookingTransition(c, "cancel")
}

func bookingTransition(c *gin.Context, action string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	actor := middleware.GetRequestContext(c)
	svc := bookingService(c)

	if action == "confirm" {
		err = svc.Confirm(id, actor)
	} else {
		err = svc.Cancel(id, actor)
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking " + action + "ed"})
}

// DELETE /api/bookings/:id (staff/admin, cancelled only)
func DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	actor := middleware.GetRequestContext(c)
	if err := bookingService(c).Delete(id, actor); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

type ratingRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// POST /api/bookings/:id/rating (owner, confirmed bookings only)
func RateBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req ratingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	actor := middleware.GetRequestContext(c)
	if err := bookingService(c).Rate(id, actor, req.Rating, req.Comment); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating saved"})
}

// GET /api/bookings/:id/voucher
func GetBookingVoucher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	actor := middleware.GetRequestContext(c)

	// Ownership/role check happens in the booking service.
	if _, err := bookingService(c).Get(id, actor); err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
