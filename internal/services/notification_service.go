package services

import (
	"fmt"

	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

// NotificationService writes in-app notifications. Dispatch is best-effort:
// errors are logged and swallowed so a failed notification never affects the
// booking write that triggered it.
type NotificationService struct {
	Repo      repositories.NotificationRepository
	RequestID string
}

func (s NotificationService) BookingSubmitted(b models.Booking) {
	bookingID := b.ID
	n := models.Notification{
		UserID:    b.UserID,
		BookingID: &bookingID,
		Title:     "Booking received",
		Body: fmt.Sprintf("We received your booking #%d for %s %s. Total due: %s. Please settle payment via %s to confirm.",
			b.ID, b.BookingDate, b.BookingTime, utils.FormatPeso(b.TotalPrice), b.PaymentMethod),
	}
	if _, err := s.Repo.Create(n); err != nil {
		utils.LogEvent(s.RequestID, "notification", "booking_submitted", "dispatch failed: "+err.Error())
	}
}

func (s NotificationService) BookingStatusChanged(b models.Booking) {
	bookingID := b.ID
	title := "Booking update"
	body := fmt.Sprintf("Your booking #%d is now %s.", b.ID, b.Status)
	switch b.Status {
	case models.StatusConfirmed:
		title = "Booking confirmed"
		body = fmt.Sprintf("Your booking #%d is confirmed and marked as paid. See you there!", b.ID)
	case models.StatusCancelled:
		title = "Booking cancelled"
		body = fmt.Sprintf("Your booking #%d was cancelled. Your payment will be refunded.", b.ID)
	}
	n := models.Notification{
		UserID:    b.UserID,
		BookingID: &bookingID,
		Title:     title,
		Body:      body,
	}
	if _, err := s.Repo.Create(n); err != nil {
		utils.LogEvent(s.RequestID, "notification", "status_changed", "dispatch failed: "+err.Error())
	}
}

func (s NotificationService) ListForUser(userID int64) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

func (s NotificationService) MarkRead(id, userID int64) error {
	return s.Repo.MarkRead(id, userID)
}
