package repositories

import (
	"database/sql"
	"errors"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the user plus stored password hash for login checks.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, password_hash, role, status
		FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &hash, &u.Role, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, role, status
		FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	return count > 0, err
}

func (r UserRepository) Create(name, email, phone, passwordHash, role string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, 'active')`,
		name, email, phone, passwordHash, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT id, name, email, phone, role, status FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) UpdateRole(id int64, role string) error {
	res, err := r.db().Exec(`UPDATE users SET role=?, updated_at=NOW() WHERE id=?`, role, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
