package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/utils"
)

type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const destinationColumns = `id, name, COALESCE(description,''), location, unit_price, guests_max, COALESCE(time_slots,''), status`

func scanDestination(row interface{ Scan(...any) error }) (models.Destination, error) {
	var d models.Destination
	var slots string
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Location, &d.UnitPrice, &d.GuestsMax, &slots, &d.Status)
	if err != nil {
		return models.Destination{}, err
	}
	d.TimeSlots = utils.SplitSlotList(slots)
	return d, nil
}

// List returns destinations, optionally restricted to active ones.
func (r DestinationRepository) List(onlyActive bool) ([]models.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations`
	args := []any{}
	if onlyActive {
		query += ` WHERE status = ?`
		args = append(args, models.DestinationActive)
	}
	query += ` ORDER BY name`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) GetByID(id int64) (models.Destination, error) {
	row := r.db().QueryRow(`SELECT `+destinationColumns+` FROM destinations WHERE id = ?`, id)
	d, err := scanDestination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Destination{}, domain.NotFoundError{Resource: "destination", Err: err}
	}
	return d, err
}

func (r DestinationRepository) Create(d models.Destination) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO destinations (name, description, location, unit_price, guests_max, time_slots, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.Description, d.Location, d.UnitPrice, d.GuestsMax,
		utils.JoinSlotList(d.TimeSlots), d.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update performs PATCH-style updates based on key presence.
func (r DestinationRepository) Update(id int64, upd models.DestinationUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if upd.Location != nil {
		sets = append(sets, "location=?")
		args = append(args, strings.TrimSpace(*upd.Location))
	}
	if upd.UnitPrice != nil {
		sets = append(sets, "unit_price=?")
		args = append(args, *upd.UnitPrice)
	}
	if upd.GuestsMax != nil {
		sets = append(sets, "guests_max=?")
		args = append(args, *upd.GuestsMax)
	}
	if upd.TimeSlots != nil {
		sets = append(sets, "time_slots=?")
		args = append(args, utils.JoinSlotList(*upd.TimeSlots))
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, strings.TrimSpace(*upd.Status))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE destinations SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "destination"}
	}
	return nil
}

func (r DestinationRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM destinations WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "destination"}
	}
	return nil
}
