package services

import (
	"tourism/internal/repositories"
)

type ReportsService struct {
	BookingRepo repositories.BookingRepository
}

// Dashboard aggregates the numbers shown on the staff dashboard.
type Dashboard struct {
	TotalBookings   int                                `json:"total_bookings"`
	ByStatus        []repositories.StatusCount         `json:"by_status"`
	PaidRevenue     float64                            `json:"paid_revenue"`
	TopDestinations []repositories.DestinationBookings `json:"top_destinations"`
}

func (s ReportsService) GetDashboard() (Dashboard, error) {
	counts, err := s.BookingRepo.CountByStatus()
	if err != nil {
		return Dashboard{}, err
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	revenue, err := s.BookingRepo.PaidRevenue()
	if err != nil {
		return Dashboard{}, err
	}

	top, err := s.BookingRepo.TopDestinations(5)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TotalBookings:   total,
		ByStatus:        counts,
		PaidRevenue:     revenue,
		TopDestinations: top,
	}, nil
}
