package models

// BookingType distinguishes per-head pricing from flat package pricing.
type BookingType string

const (
	BookingIndividual BookingType = "individual"
	BookingPackage    BookingType = "package"
)

func (t BookingType) Valid() bool {
	return t == BookingIndividual || t == BookingPackage
}

// PaymentMethod is one of the offered payment channels.
type PaymentMethod string

const (
	PaymentGCash   PaymentMethod = "gcash"
	PaymentPayMaya PaymentMethod = "paymaya"
	PaymentBank    PaymentMethod = "bank"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentGCash || m == PaymentPayMaya || m == PaymentBank
}

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the booking status state machine. Confirmed and
// cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {},
	StatusCancelled: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// PaymentStatus values.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Booking is the persisted record created from a successfully submitted draft.
type Booking struct {
	ID              int64         `json:"id"`
	DraftToken      string        `json:"-"`
	UserID          int64         `json:"user_id"`
	DestinationID   int64         `json:"destination_id"`
	BookingDate     string        `json:"booking_date"`
	BookingTime     string        `json:"booking_time"`
	Type            BookingType   `json:"booking_type"`
	Adults          int           `json:"adults"`
	Children        int           `json:"children"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Nationality     string        `json:"nationality"`
	SpecialRequests string        `json:"special_requests"`
	NewsletterOptIn bool          `json:"newsletter_opt_in"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   string        `json:"payment_status"`
	Rating          *int          `json:"rating,omitempty"`
	RatingComment   string        `json:"rating_comment,omitempty"`
}
