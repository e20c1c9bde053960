package booking

import (
	"testing"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

func TestApplyGuestChangeCapRejected(t *testing.T) {
	// 7 adults + 1 child, adding a second child would make 9.
	adults, children, err := ApplyGuestChange(7, 1, 0, 1, models.BookingIndividual)
	if err == nil {
		t.Fatalf("expected rejection above 8 guests")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if adults != 7 || children != 1 {
		t.Fatalf("prior counts must be retained, got %d/%d", adults, children)
	}
}

func TestApplyGuestChangeAtCapAccepted(t *testing.T) {
	adults, children, err := ApplyGuestChange(7, 0, 0, 1, models.BookingIndividual)
	if err != nil {
		t.Fatalf("8 guests should be allowed: %v", err)
	}
	if adults != 7 || children != 1 {
		t.Fatalf("unexpected counts %d/%d", adults, children)
	}
}

func TestApplyGuestChangeMinimumOneAdult(t *testing.T) {
	adults, children, err := ApplyGuestChange(1, 2, -1, 0, models.BookingIndividual)
	if err == nil {
		t.Fatalf("expected rejection below 1 adult")
	}
	if adults != 1 || children != 2 {
		t.Fatalf("prior counts must be retained, got %d/%d", adults, children)
	}
}

func TestApplyGuestChangeNegativeChildrenRejected(t *testing.T) {
	_, _, err := ApplyGuestChange(2, 0, 0, -1, models.BookingIndividual)
	if err == nil {
		t.Fatalf("expected rejection for negative children")
	}
}

func TestApplyGuestChangePackageFixed(t *testing.T) {
	adults, children, err := ApplyGuestChange(8, 0, -1, 0, models.BookingPackage)
	if err == nil {
		t.Fatalf("package guest counts must not be adjustable")
	}
	if adults != 8 || children != 0 {
		t.Fatalf("prior counts must be retained, got %d/%d", adults, children)
	}
}

func TestResetGuestsForType(t *testing.T) {
	if a, ch := ResetGuestsForType(models.BookingPackage, 6); a != 6 || ch != 0 {
		t.Fatalf("package reset should be (guestsMax, 0), got %d/%d", a, ch)
	}
	if a, ch := ResetGuestsForType(models.BookingIndividual, 6); a != 1 || ch != 0 {
		t.Fatalf("individual reset should be (1, 0), got %d/%d", a, ch)
	}
}

func TestValidateGuestCounts(t *testing.T) {
	if err := ValidateGuestCounts(2, 1, models.BookingIndividual, 8); err != nil {
		t.Fatalf("valid counts rejected: %v", err)
	}
	if err := ValidateGuestCounts(7, 2, models.BookingIndividual, 8); err == nil {
		t.Fatalf("9 guests should be rejected")
	}
	if err := ValidateGuestCounts(0, 3, models.BookingIndividual, 8); err == nil {
		t.Fatalf("0 adults should be rejected for individual")
	}
	if err := ValidateGuestCounts(6, 0, models.BookingPackage, 6); err != nil {
		t.Fatalf("package at full headcount rejected: %v", err)
	}
	if err := ValidateGuestCounts(5, 0, models.BookingPackage, 6); err == nil {
		t.Fatalf("package below full headcount should be rejected")
	}
}
