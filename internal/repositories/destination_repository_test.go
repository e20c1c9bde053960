package repositories

import (
	"testing"

	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newDestinationRepo(t *testing.T) (DestinationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return DestinationRepository{DB: db}, mock
}

func TestDestinationGetByIDParsesTimeSlots(t *testing.T) {
	repo, mock := newDestinationRepo(t)

	mock.ExpectQuery("FROM destinations WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "location", "unit_price", "guests_max", "time_slots", "status",
		}).AddRow(7, "Hidden Lagoon", "", "El Nido", 1000.0, 8, "08:00, 10:00,13:00", "active"))

	d, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(d.TimeSlots) != 3 || d.TimeSlots[1] != "10:00" {
		t.Fatalf("time slots parsed wrong: %v", d.TimeSlots)
	}
	if !d.IsActive() {
		t.Fatalf("expected active destination")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationGetByIDNotFound(t *testing.T) {
	repo, mock := newDestinationRepo(t)

	mock.ExpectQuery("FROM destinations WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "location", "unit_price", "guests_max", "time_slots", "status",
		}))

	_, err := repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDestinationListActiveOnly(t *testing.T) {
	repo, mock := newDestinationRepo(t)

	mock.ExpectQuery("FROM destinations WHERE status").
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "location", "unit_price", "guests_max", "time_slots", "status",
		}).AddRow(1, "Reef Walk", "", "Coron", 500.0, 4, "09:00", "active"))

	list, err := repo.List(true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Reef Walk" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationUpdateSkipsEmptyPatch(t *testing.T) {
	repo, mock := newDestinationRepo(t)

	// No keys present: no SQL should run at all.
	if err := repo.Update(7, models.DestinationUpdate{}); err != nil {
		t.Fatalf("empty patch should be a no-op: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestinationUpdateAppliesPresentKeys(t *testing.T) {
	repo, mock := newDestinationRepo(t)

	price := 1500.0
	status := "inactive"
	mock.ExpectExec("UPDATE destinations SET").
		WithArgs(1500.0, "inactive", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(7, models.DestinationUpdate{UnitPrice: &price, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
