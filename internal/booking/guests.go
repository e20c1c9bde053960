package booking

import (
	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

// MaxGuests is the hard cap on adults+children per booking.
const MaxGuests = 8

// ApplyGuestChange validates a requested guest-count delta and returns the
// resulting counts. It is a pure decision function: on rejection the caller
// keeps its prior counts unchanged.
func ApplyGuestChange(adults, children, deltaAdults, deltaChildren int, t models.BookingType) (int, int, error) {
	if t == models.BookingPackage {
		return adults, children, domain.ValidationError{Field: "guests", Msg: "package guest counts are fixed"}
	}

	newAdults := adults + deltaAdults
	newChildren := children + deltaChildren

	if newAdults < 1 {
		return adults, children, domain.ValidationError{Field: "adults", Msg: "at least 1 adult is required"}
	}
	if newChildren < 0 {
		return adults, children, domain.ValidationError{Field: "children", Msg: "children cannot be negative"}
	}
	if newAdults+newChildren > MaxGuests {
		return adults, children, domain.ValidationError{Field: "guests", Msg: "maximum of 8 guests per booking"}
	}

	return newAdults, newChildren, nil
}

// ResetGuestsForType returns the guest counts a draft takes on when its
// booking type changes. Packages always book the destination's full
// headcount; individual bookings start from a single adult.
func ResetGuestsForType(t models.BookingType, destinationGuestsMax int) (adults, children int) {
	if t == models.BookingPackage {
		return destinationGuestsMax, 0
	}
	return 1, 0
}

// ValidateGuestCounts checks absolute counts against the policy, used at
// submission time when no delta is involved.
func ValidateGuestCounts(adults, children int, t models.BookingType, destinationGuestsMax int) error {
	if adults+children > MaxGuests {
		return domain.ValidationError{Field: "guests", Msg: "maximum of 8 guests per booking"}
	}
	if t == models.BookingPackage {
		if adults != destinationGuestsMax || children != 0 {
			return domain.ValidationError{Field: "guests", Msg: "package guest counts are fixed"}
		}
		return nil
	}
	if adults < 1 {
		return domain.ValidationError{Field: "adults", Msg: "at least 1 adult is required"}
	}
	if children < 0 {
		return domain.ValidationError{Field: "children", Msg: "children cannot be negative"}
	}
	return nil
}
