package repositories

import (
	"database/sql"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r NotificationRepository) Create(n models.Notification) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO notifications (user_id, booking_id, title, body)
		VALUES (?, ?, ?, ?)`,
		n.UserID, n.BookingID, n.Title, n.Body)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByUser returns a user's notifications, newest first.
func (r NotificationRepository) ListByUser(userID int64) ([]models.Notification, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, booking_id, title, COALESCE(body,''), is_read,
			DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM notifications WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var bookingID sql.NullInt64
		if err := rows.Scan(&n.ID, &n.UserID, &bookingID, &n.Title, &n.Body, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		if bookingID.Valid {
			v := bookingID.Int64
			n.BookingID = &v
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flags a notification as read; scoped to the owning user.
func (r NotificationRepository) MarkRead(id, userID int64) error {
	res, err := r.db().Exec(`UPDATE notifications SET is_read=1 WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "notification"}
	}
	return nil
}
