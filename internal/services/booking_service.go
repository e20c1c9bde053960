package services

import (
	"fmt"

	"tourism/internal/booking"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

// Notifier receives fire-and-forget booking events. Failures never roll back
// the booking write.
type Notifier interface {
	BookingSubmitted(b models.Booking)
	BookingStatusChanged(b models.Booking)
}

type BookingService struct {
	BookingRepo     repositories.BookingRepository
	DestinationRepo repositories.DestinationRepository
	Notify          Notifier
	RequestID       string
}

// Submit converts a fully validated draft into a persisted booking. Every
// constraint is re-checked server-side and the total is recomputed from the
// destination's current unit price; any client-supplied figure is ignored.
// Submitting the same draft again returns the original booking id.
func (s BookingService) Submit(d *booking.Draft, actor domain.RequestContext) (models.Booking, error) {
	if d.UserID != actor.UserID {
		return models.Booking{}, domain.AuthorizationError{Action: "submit this draft"}
	}

	// Idempotency: a draft token maps to at most one booking.
	if d.BookingID != 0 {
		return s.BookingRepo.GetByID(d.BookingID)
	}
	if existing, err := s.BookingRepo.GetByDraftToken(d.Token); err == nil {
		d.BookingID = existing.ID
		return existing, nil
	}

	dest, err := s.DestinationRepo.GetByID(d.DestinationID)
	if err != nil {
		return models.Booking{}, err
	}
	if !dest.IsActive() {
		return models.Booking{}, domain.ConflictError{Resource: "destination", Msg: "destination is not accepting bookings"}
	}

	if err := d.ValidateForSubmission(dest); err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		DraftToken:      d.Token,
		UserID:          actor.UserID,
		DestinationID:   dest.ID,
		BookingDate:     d.Date,
		BookingTime:     d.TimeSlot,
		Type:            d.Type,
		Adults:          d.Adults,
		Children:        d.Children,
		FirstName:       d.Contact.FirstName,
		LastName:        d.Contact.LastName,
		Email:           d.Contact.Email,
		Phone:           d.Contact.Phone,
		Nationality:     d.Contact.Nationality,
		SpecialRequests: d.Contact.SpecialRequests,
		NewsletterOptIn: d.Consents.NewsletterOptIn,
		PaymentMethod:   d.PaymentMethod,
		TotalPrice:      booking.ComputeTotal(dest.UnitPrice, d.Type, d.Adults, d.Children),
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentUnpaid,
	}

	id, err := s.BookingRepo.Create(b)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to save booking", Err: err}
	}
	b.ID = id
	d.BookingID = id
	d.Total = b.TotalPrice

	utils.LogEvent(s.RequestID, "booking", "submit",
		fmt.Sprintf("booking_id=%d destination_id=%d total=%s", id, dest.ID, utils.FormatMoney(b.TotalPrice)))

	if s.Notify != nil {
		go s.Notify.BookingSubmitted(b)
	}
	return b, nil
}

// Get returns a booking; tourists may only read their own.
func (s BookingService) Get(id int64, actor domain.RequestContext) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if !actor.IsStaff() && b.UserID != actor.UserID {
		return models.Booking{}, domain.AuthorizationError{Action: "view this booking"}
	}
	return b, nil
}

// ListFor returns all bookings for staff, own bookings for tourists.
func (s BookingService) ListFor(actor domain.RequestContext) ([]models.Booking, error) {
	if actor.IsStaff() {
		return s.BookingRepo.ListAll()
	}
	return s.BookingRepo.ListByUser(actor.UserID)
}

// Confirm moves a pending booking to confirmed/paid. Staff only; the role
// check lives here, not just in routing.
func (s BookingService) Confirm(id int64, actor domain.RequestContext) error {
	return s.transition(id, actor, models.StatusConfirmed, models.PaymentPaid, "confirm bookings")
}

// Cancel moves a pending booking to cancelled/refunded. Staff only.
func (s BookingService) Cancel(id int64, actor domain.RequestContext) error {
	return s.transition(id, actor, models.StatusCancelled, models.PaymentRefunded, "cancel bookings")
}

func (s BookingService) transition(id int64, actor domain.RequestContext, target models.BookingStatus, paymentStatus, action string) error {
	if !actor.IsStaff() {
		return domain.AuthorizationError{Action: action}
	}
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !b.Status.CanTransitionTo(target) {
		return domain.ConflictError{Resource: "booking", Msg: fmt.Sprintf("cannot move from %s to %s", b.Status, target)}
	}
	if err := s.BookingRepo.UpdateStatus(id, target, paymentStatus); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "booking", "status",
		fmt.Sprintf("booking_id=%d status=%s payment_status=%s", id, target, paymentStatus))

	if s.Notify != nil {
		b.Status = target
		b.PaymentStatus = paymentStatus
		go s.Notify.BookingStatusChanged(b)
	}
	return nil
}

// Delete removes a booking. Staff only, and only once it is cancelled.
func (s BookingService) Delete(id int64, actor domain.RequestContext) error {
	if !actor.IsStaff() {
		return domain.AuthorizationError{Action: "delete bookings"}
	}
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if b.Status != models.StatusCancelled {
		return domain.ConflictError{Resource: "booking", Msg: "only cancelled bookings can be deleted"}
	}
	return s.BookingRepo.Delete(id)
}

// Rate lets the owning tourist rate a confirmed booking. Re-rating simply
// overwrites the previous value.
func (s BookingService) Rate(id int64, actor domain.RequestContext, stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return domain.ValidationError{Field: "rating", Msg: "rating must be between 1 and 5"}
	}
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if b.UserID != actor.UserID {
		return domain.AuthorizationError{Action: "rate this booking"}
	}
	if b.Status != models.StatusConfirmed {
		return domain.ConflictError{Resource: "booking", Msg: "only confirmed bookings can be rated"}
	}
	return s.BookingRepo.UpdateRating(id, stars, comment)
}
