package services

import (
	"strings"

	"tourism/internal/booking"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
)

type DestinationService struct {
	Repo repositories.DestinationRepository
}

// List returns active destinations for tourists; staff see everything.
func (s DestinationService) List(actor domain.RequestContext) ([]models.Destination, error) {
	return s.Repo.List(!actor.IsStaff())
}

func (s DestinationService) Get(id int64) (models.Destination, error) {
	return s.Repo.GetByID(id)
}

func (s DestinationService) Create(d models.Destination) (int64, error) {
	if err := validateDestination(&d); err != nil {
		return 0, err
	}
	if d.Status == "" {
		d.Status = models.DestinationActive
	}
	return s.Repo.Create(d)
}

func (s DestinationService) Update(id int64, upd models.DestinationUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if upd.UnitPrice != nil && *upd.UnitPrice <= 0 {
		return domain.ValidationError{Field: "unit_price", Msg: "price must be positive"}
	}
	if upd.GuestsMax != nil && (*upd.GuestsMax < 1 || *upd.GuestsMax > booking.MaxGuests) {
		return domain.ValidationError{Field: "guests_max", Msg: "guests max must be between 1 and 8"}
	}
	if upd.Status != nil {
		st := strings.TrimSpace(*upd.Status)
		if st != models.DestinationActive && st != models.DestinationInactive {
			return domain.ValidationError{Field: "status", Msg: "unknown status"}
		}
	}
	return s.Repo.Update(id, upd)
}

func (s DestinationService) Delete(id int64) error {
	return s.Repo.Delete(id)
}

func validateDestination(d *models.Destination) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if d.UnitPrice <= 0 {
		return domain.ValidationError{Field: "unit_price", Msg: "price must be positive"}
	}
	if d.GuestsMax < 1 || d.GuestsMax > booking.MaxGuests {
		return domain.ValidationError{Field: "guests_max", Msg: "guests max must be between 1 and 8"}
	}
	if len(d.TimeSlots) == 0 {
		return domain.ValidationError{Field: "time_slots", Msg: "at least one time slot is required"}
	}
	return nil
}
