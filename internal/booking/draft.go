package booking

import (
	"regexp"
	"strings"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/utils"

	"github.com/google/uuid"
)

// Steps of the booking flow.
const (
	StepDateGuests  = 1
	StepContactInfo = 2
	StepPayment     = 3
)

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Contact holds the step-2 contact fields.
type Contact struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Nationality     string `json:"nationality"`
	SpecialRequests string `json:"special_requests"`
}

// Consents holds the step-2 checkboxes.
type Consents struct {
	SwimmingConfirmed bool `json:"swimming_confirmed"`
	TermsAccepted     bool `json:"terms_accepted"`
	NewsletterOptIn   bool `json:"newsletter_opt_in"`
}

// Snapshot is the step-1 data frozen when the first gate passes.
type Snapshot struct {
	Date     string             `json:"booking_date"`
	TimeSlot string             `json:"booking_time"`
	Type     models.BookingType `json:"booking_type"`
	Adults   int                `json:"adults"`
	Children int                `json:"children"`
	Total    float64            `json:"total_price"`
}

// Draft is an in-progress, unpersisted booking assembled across three steps.
// It is owned by a single session; the store serializes mutations.
type Draft struct {
	Token         string `json:"token"`
	UserID        int64  `json:"user_id"`
	DestinationID int64  `json:"destination_id"`

	// Destination data captured at draft creation. UnitPrice and TimeSlots
	// are re-read at submission time since they can change underneath an
	// open session.
	UnitPrice float64  `json:"unit_price"`
	GuestsMax int      `json:"guests_max"`
	TimeSlots []string `json:"time_slots"`

	Date          string               `json:"selected_date"`
	TimeSlot      string               `json:"selected_time"`
	Type          models.BookingType   `json:"booking_type"`
	Adults        int                  `json:"adults"`
	Children      int                  `json:"children"`
	Contact       Contact              `json:"contact"`
	Consents      Consents             `json:"consents"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`

	// Total is derived, never accepted from the client.
	Total float64 `json:"total_price"`

	Step     int       `json:"current_step"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`

	// BookingID is set once the draft has been submitted successfully and
	// makes resubmission a no-op.
	BookingID int64 `json:"booking_id,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NewDraft opens the booking flow for a destination. The flow starts at step
// 1 as an individual booking for one adult with the default payment method
// pre-selected.
func NewDraft(userID int64, dest models.Destination) *Draft {
	adults, children := ResetGuestsForType(models.BookingIndividual, dest.GuestsMax)
	now := utils.NowUTC()
	d := &Draft{
		Token:         uuid.NewString(),
		UserID:        userID,
		DestinationID: dest.ID,
		UnitPrice:     dest.UnitPrice,
		GuestsMax:     dest.GuestsMax,
		TimeSlots:     append([]string(nil), dest.TimeSlots...),
		Type:          models.BookingIndividual,
		Adults:        adults,
		Children:      children,
		PaymentMethod: models.PaymentGCash,
		Step:          StepDateGuests,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	d.recompute()
	return d
}

func (d *Draft) recompute() {
	d.Total = ComputeTotal(d.UnitPrice, d.Type, d.Adults, d.Children)
	d.UpdatedAt = utils.NowUTC()
}

// SetType switches the booking type and resets guest counts per policy.
func (d *Draft) SetType(t models.BookingType) error {
	if !t.Valid() {
		return domain.ValidationError{Field: "booking_type", Msg: "unknown booking type"}
	}
	if t == d.Type {
		return nil
	}
	d.Type = t
	d.Adults, d.Children = ResetGuestsForType(t, d.GuestsMax)
	d.recompute()
	return nil
}

// AdjustGuests applies a guest-count delta through the allocation policy.
// Rejected changes leave the draft untouched.
func (d *Draft) AdjustGuests(deltaAdults, deltaChildren int) error {
	adults, children, err := ApplyGuestChange(d.Adults, d.Children, deltaAdults, deltaChildren, d.Type)
	if err != nil {
		return err
	}
	d.Adults, d.Children = adults, children
	d.recompute()
	return nil
}

// SetDate sets the selected calendar date (YYYY-MM-DD).
func (d *Draft) SetDate(date string) error {
	date = strings.TrimSpace(date)
	if date != "" {
		day, err := utils.ParseDate(date)
		if err != nil {
			return domain.ValidationError{Field: "selected_date", Msg: "invalid date", Err: err}
		}
		if day.Before(utils.Today()) {
			return domain.ValidationError{Field: "selected_date", Msg: "date cannot be in the past"}
		}
	}
	d.Date = date
	d.UpdatedAt = utils.NowUTC()
	return nil
}

// SetTimeSlot sets the selected time slot; it must be one the destination offers.
func (d *Draft) SetTimeSlot(slot string) error {
	slot = strings.TrimSpace(slot)
	if slot != "" && !containsSlot(d.TimeSlots, slot) {
		return domain.ValidationError{Field: "selected_time", Msg: "time slot not offered for this destination"}
	}
	d.TimeSlot = slot
	d.UpdatedAt = utils.NowUTC()
	return nil
}

// SetContact replaces the contact block, trimming each field.
func (d *Draft) SetContact(c Contact) {
	d.Contact = Contact{
		FirstName:       strings.TrimSpace(c.FirstName),
		LastName:        strings.TrimSpace(c.LastName),
		Email:           strings.TrimSpace(c.Email),
		Phone:           strings.TrimSpace(c.Phone),
		Nationality:     strings.TrimSpace(c.Nationality),
		SpecialRequests: strings.TrimSpace(c.SpecialRequests),
	}
	d.UpdatedAt = utils.NowUTC()
}

// SetConsents replaces the consent checkboxes.
func (d *Draft) SetConsents(c Consents) {
	d.Consents = c
	d.UpdatedAt = utils.NowUTC()
}

// SetPaymentMethod selects one of the offered payment channels.
func (d *Draft) SetPaymentMethod(m models.PaymentMethod) error {
	if !m.Valid() {
		return domain.ValidationError{Field: "payment_method", Msg: "unknown payment method"}
	}
	d.PaymentMethod = m
	d.UpdatedAt = utils.NowUTC()
	return nil
}

// Continue runs the current step's gate. On a passing gate the draft advances
// one step; a failing gate keeps the current step and returns the first
// failing check as a field-level validation error. From step 3 a passing
// gate does not advance — it reports ready=true and the caller performs the
// submission.
func (d *Draft) Continue() (ready bool, err error) {
	switch d.Step {
	case StepDateGuests:
		if err := d.gateDateGuests(); err != nil {
			return false, err
		}
		d.Snapshot = &Snapshot{
			Date:     d.Date,
			TimeSlot: d.TimeSlot,
			Type:     d.Type,
			Adults:   d.Adults,
			Children: d.Children,
			Total:    d.Total,
		}
		d.Step = StepContactInfo
		return false, nil
	case StepContactInfo:
		if err := d.gateContactInfo(); err != nil {
			return false, err
		}
		d.Step = StepPayment
		return false, nil
	case StepPayment:
		if !d.PaymentMethod.Valid() {
			return false, domain.ValidationError{Field: "payment_method", Msg: "unknown payment method"}
		}
		return true, nil
	}
	return false, domain.InternalError{Msg: "draft in unknown step"}
}

// Back moves one step towards step 1. It never validates and never clears
// entered data; at step 1 it is a no-op.
func (d *Draft) Back() {
	if d.Step > StepDateGuests {
		d.Step--
		d.UpdatedAt = utils.NowUTC()
	}
}

func (d *Draft) gateDateGuests() error {
	if strings.TrimSpace(d.Date) == "" {
		return domain.ValidationError{Field: "selected_date", Msg: "please choose a date"}
	}
	if strings.TrimSpace(d.TimeSlot) == "" {
		return domain.ValidationError{Field: "selected_time", Msg: "please choose a time slot"}
	}
	if d.Adults+d.Children <= 0 {
		return domain.ValidationError{Field: "guests", Msg: "at least one guest is required"}
	}
	return nil
}

// gateContactInfo checks step-2 fields in order and reports only the first
// failure.
func (d *Draft) gateContactInfo() error {
	switch {
	case d.Contact.FirstName == "":
		return domain.ValidationError{Field: "first_name", Msg: "first name is required"}
	case d.Contact.LastName == "":
		return domain.ValidationError{Field: "last_name", Msg: "last name is required"}
	case !emailShape.MatchString(d.Contact.Email):
		return domain.ValidationError{Field: "email", Msg: "a valid email address is required"}
	case d.Contact.Phone == "":
		return domain.ValidationError{Field: "phone", Msg: "phone number is required"}
	case !d.Consents.SwimmingConfirmed:
		return domain.ValidationError{Field: "swimming_confirmed", Msg: "please confirm the swimming ability notice"}
	case !d.Consents.TermsAccepted:
		return domain.ValidationError{Field: "terms_accepted", Msg: "please accept the terms and conditions"}
	}
	return nil
}

// ValidateForSubmission re-runs every gate against the destination's current
// data. Client-side validation is a UX convenience, not a trust boundary, so
// the submission path never relies on what the browser already checked.
func (d *Draft) ValidateForSubmission(dest models.Destination) error {
	if strings.TrimSpace(d.Date) == "" {
		return domain.ValidationError{Field: "selected_date", Msg: "please choose a date"}
	}
	day, err := utils.ParseDate(d.Date)
	if err != nil {
		return domain.ValidationError{Field: "selected_date", Msg: "invalid date", Err: err}
	}
	if day.Before(utils.Today()) {
		return domain.ValidationError{Field: "selected_date", Msg: "date cannot be in the past"}
	}
	if !dest.HasTimeSlot(d.TimeSlot) {
		return domain.ValidationError{Field: "selected_time", Msg: "time slot not offered for this destination"}
	}
	if !d.Type.Valid() {
		return domain.ValidationError{Field: "booking_type", Msg: "unknown booking type"}
	}
	if err := ValidateGuestCounts(d.Adults, d.Children, d.Type, dest.GuestsMax); err != nil {
		return err
	}
	if err := d.gateContactInfo(); err != nil {
		return err
	}
	if !d.PaymentMethod.Valid() {
		return domain.ValidationError{Field: "payment_method", Msg: "unknown payment method"}
	}
	return nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
