package repositories

import (
	"database/sql"
	"errors"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, draft_token, user_id, destination_id,
	DATE_FORMAT(booking_date, '%Y-%m-%d'), booking_time, booking_type,
	adults, children, first_name, last_name, email, phone,
	COALESCE(nationality,''), COALESCE(special_requests,''), newsletter_opt_in,
	payment_method, total_price, status, payment_status, rating,
	COALESCE(rating_comment,'')`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var rating sql.NullInt64
	err := row.Scan(
		&b.ID, &b.DraftToken, &b.UserID, &b.DestinationID,
		&b.BookingDate, &b.BookingTime, &b.Type,
		&b.Adults, &b.Children, &b.FirstName, &b.LastName, &b.Email, &b.Phone,
		&b.Nationality, &b.SpecialRequests, &b.NewsletterOptIn,
		&b.PaymentMethod, &b.TotalPrice, &b.Status, &b.PaymentStatus, &rating,
		&b.RatingComment,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if rating.Valid {
		v := int(rating.Int64)
		b.Rating = &v
	}
	return b, nil
}

// Create persists a submitted booking and returns its id.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (
			draft_token, user_id, destination_id, booking_date, booking_time,
			booking_type, adults, children, first_name, last_name, email, phone,
			nationality, special_requests, newsletter_opt_in, payment_method,
			total_price, status, payment_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.DraftToken, b.UserID, b.DestinationID, b.BookingDate, b.BookingTime,
		b.Type, b.Adults, b.Children, b.FirstName, b.LastName, b.Email, b.Phone,
		b.Nationality, b.SpecialRequests, b.NewsletterOptIn, b.PaymentMethod,
		b.TotalPrice, b.Status, b.PaymentStatus,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// GetByDraftToken resolves a previously submitted draft to its booking.
func (r BookingRepository) GetByDraftToken(token string) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE draft_token = ?`, token)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// ListByUser returns a tourist's own bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY id DESC`, userID)
}

// ListAll returns every booking, newest first (staff dashboards).
func (r BookingRepository) ListAll() ([]models.Booking, error) {
	return r.list(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY id DESC`)
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking to the given status/payment-status pair.
func (r BookingRepository) UpdateStatus(id int64, status models.BookingStatus, paymentStatus string) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=?, payment_status=?, updated_at=NOW() WHERE id=?`,
		status, paymentStatus, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// UpdateRating sets or overwrites the tourist's rating.
func (r BookingRepository) UpdateRating(id int64, stars int, comment string) error {
	res, err := r.db().Exec(`UPDATE bookings SET rating=?, rating_comment=?, updated_at=NOW() WHERE id=?`,
		stars, comment, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// StatusCount pairs a status with how many bookings hold it.
type StatusCount struct {
	Status models.BookingStatus `json:"status"`
	Count  int                  `json:"count"`
}

func (r BookingRepository) CountByStatus() ([]StatusCount, error) {
	rows, err := r.db().Query(`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StatusCount{}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// PaidRevenue sums total_price over paid bookings.
func (r BookingRepository) PaidRevenue() (float64, error) {
	var total float64
	err := r.db().QueryRow(`SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE payment_status = ?`,
		models.PaymentPaid).Scan(&total)
	return total, err
}

// DestinationBookings pairs a destination with its booking count.
type DestinationBookings struct {
	DestinationID int64  `json:"destination_id"`
	Name          string `json:"name"`
	Count         int    `json:"count"`
}

// TopDestinations returns the most-booked destinations, busiest first.
func (r BookingRepository) TopDestinations(limit int) ([]DestinationBookings, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db().Query(`
		SELECT b.destination_id, COALESCE(d.name, ''), COUNT(*) AS cnt
		FROM bookings b
		LEFT JOIN destinations d ON d.id = b.destination_id
		GROUP BY b.destination_id, d.name
		ORDER BY cnt DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DestinationBookings{}
	for rows.Next() {
		var db DestinationBookings
		if err := rows.Scan(&db.DestinationID, &db.Name, &db.Count); err != nil {
			return nil, err
		}
		out = append(out, db)
	}
	return out, rows.Err()
}
