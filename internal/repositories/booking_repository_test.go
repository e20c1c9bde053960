package repositories

import (
	"testing"

	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingRepo(t *testing.T) (BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return BookingRepository{DB: db}, mock
}

func TestBookingUpdateStatusNotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("confirmed", "paid", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(99, models.StatusConfirmed, models.PaymentPaid)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing booking, got %v", err)
	}
}

func TestBookingCountByStatus(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).
			AddRow("confirmed", 5).
			AddRow("cancelled", 1))

	counts, err := repo.CountByStatus()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(counts))
	}
	if counts[1].Status != models.StatusConfirmed || counts[1].Count != 5 {
		t.Fatalf("unexpected bucket: %+v", counts[1])
	}
}

func TestBookingGetByIDScansRating(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("FROM bookings WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "draft_token", "user_id", "destination_id", "booking_date", "booking_time",
			"booking_type", "adults", "children", "first_name", "last_name", "email", "phone",
			"nationality", "special_requests", "newsletter_opt_in", "payment_method",
			"total_price", "status", "payment_status", "rating", "rating_comment",
		}).AddRow(
			42, "tok", 1, 7, "2025-06-01", "10:00",
			"package", 8, 0, "Ana", "Reyes", "ana@example.com", "0917",
			"PH", "", true, "bank",
			2000.0, "confirmed", "paid", 4, "lovely",
		))

	b, err := repo.GetByID(42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Type != models.BookingPackage || b.TotalPrice != 2000 {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.Rating == nil || *b.Rating != 4 {
		t.Fatalf("rating not scanned: %+v", b.Rating)
	}
}
