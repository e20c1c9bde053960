package models

// DestinationStatus values.
const (
	DestinationActive   = "active"
	DestinationInactive = "inactive"
)

// Destination is a bookable tour destination managed by staff.
type Destination struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	UnitPrice   float64  `json:"unit_price"`
	GuestsMax   int      `json:"guests_max"`
	TimeSlots   []string `json:"time_slots"`
	Status      string   `json:"status"`
}

// IsActive reports whether the destination currently accepts bookings.
func (d Destination) IsActive() bool {
	return d.Status == DestinationActive
}

// HasTimeSlot checks slot membership against the offered set.
func (d Destination) HasTimeSlot(slot string) bool {
	for _, s := range d.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// DestinationUpdate supports PATCH-style updates via key presence.
type DestinationUpdate struct {
	Name        *string
	Description *string
	Location    *string
	UnitPrice   *float64
	GuestsMax   *int
	TimeSlots   *[]string
	Status      *string
}
