package models

// Notification is an in-app message shown to a user.
type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	BookingID *int64 `json:"booking_id,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}
