package repositories

import (
	"database/sql"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/utils"
)

type WishlistRepository struct {
	DB *sql.DB
}

func (r WishlistRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Add is idempotent: wishing the same destination twice is not an error.
func (r WishlistRepository) Add(userID, destinationID int64) error {
	_, err := r.db().Exec(`
		INSERT INTO wishlists (user_id, destination_id) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE destination_id = destination_id`,
		userID, destinationID)
	return err
}

func (r WishlistRepository) Remove(userID, destinationID int64) error {
	res, err := r.db().Exec(`DELETE FROM wishlists WHERE user_id=? AND destination_id=?`,
		userID, destinationID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "wishlist entry"}
	}
	return nil
}

// ListByUser returns the wished destinations themselves, not join rows.
func (r WishlistRepository) ListByUser(userID int64) ([]models.Destination, error) {
	rows, err := r.db().Query(`
		SELECT d.id, d.name, COALESCE(d.description,''), d.location, d.unit_price,
			d.guests_max, COALESCE(d.time_slots,''), d.status
		FROM wishlists w
		JOIN destinations d ON d.id = w.destination_id
		WHERE w.user_id = ?
		ORDER BY w.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		var slots string
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Location, &d.UnitPrice,
			&d.GuestsMax, &slots, &d.Status); err != nil {
			return nil, err
		}
		d.TimeSlots = utils.SplitSlotList(slots)
		out = append(out, d)
	}
	return out, rows.Err()
}
