package booking

import "tourism/internal/domain/models"

// Rate fractions applied to a destination's unit price for individual
// bookings. Adults pay a quarter of the listed price per head; children pay
// 30% of the half-price rate.
const (
	adultRateFraction = 0.25
	childRateFraction = 0.5 * 0.30
)

// ComputeTotal maps a booking request to its total price.
//
// Package bookings are sold as a whole group unit at the destination's flat
// price, independent of guest counts. Individual bookings are priced per
// head. The returned value keeps full decimal precision; currency formatting
// is a presentation concern.
func ComputeTotal(unitPrice float64, t models.BookingType, adults, children int) float64 {
	if t == models.BookingPackage {
		return unitPrice
	}
	return float64(adults)*unitPrice*adultRateFraction + float64(children)*unitPrice*childRateFraction
}

// AdultRate returns the per-adult price for a destination.
func AdultRate(unitPrice float64) float64 {
	return unitPrice * adultRateFraction
}

// ChildRate returns the per-child price for a destination.
func ChildRate(unitPrice float64) float64 {
	return unitPrice * childRateFraction
}
