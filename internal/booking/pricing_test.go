package booking

import (
	"math"
	"testing"

	"tourism/internal/domain/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotalIndividual(t *testing.T) {
	// 2 adults and 1 child at PHP 1000: 2*250 + 1*150 = 650.
	got := ComputeTotal(1000, models.BookingIndividual, 2, 1)
	if !almostEqual(got, 650) {
		t.Fatalf("expected 650, got %v", got)
	}
}

func TestComputeTotalIndividualKeepsPrecision(t *testing.T) {
	got := ComputeTotal(999, models.BookingIndividual, 0, 1)
	if !almostEqual(got, 999*0.5*0.30) {
		t.Fatalf("child rate lost precision: got %v", got)
	}
}

func TestComputeTotalPackageIgnoresGuests(t *testing.T) {
	for _, guests := range [][2]int{{0, 0}, {1, 0}, {8, 0}, {3, 4}} {
		got := ComputeTotal(2000, models.BookingPackage, guests[0], guests[1])
		if !almostEqual(got, 2000) {
			t.Fatalf("package total should be flat 2000 for %v guests, got %v", guests, got)
		}
	}
}

func TestComputeTotalZeroGuests(t *testing.T) {
	if got := ComputeTotal(1000, models.BookingIndividual, 0, 0); !almostEqual(got, 0) {
		t.Fatalf("expected 0 for zero guests, got %v", got)
	}
}

func TestRates(t *testing.T) {
	if !almostEqual(AdultRate(1000), 250) {
		t.Fatalf("adult rate wrong: %v", AdultRate(1000))
	}
	if !almostEqual(ChildRate(1000), 150) {
		t.Fatalf("child rate wrong: %v", ChildRate(1000))
	}
}
