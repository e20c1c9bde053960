package services

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateVoucherProducesPDF(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (voucherData, error) {
			return voucherData{
				BookingID:       id,
				DestinationName: "Hidden Lagoon",
				Location:        "El Nido",
				GuestName:       "Ana Reyes",
				Phone:           "0917",
				BookingDate:     "2025-06-01",
				BookingTime:     "10:00",
				BookingType:     "individual",
				Adults:          2,
				Children:        1,
				PaymentMethod:   "gcash",
				Total:           650,
				Status:          "confirmed",
				PaymentStatus:   "paid",
			}, nil
		},
	}

	data, filename, err := svc.GenerateVoucher(42)
	if err != nil {
		t.Fatalf("generate voucher: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("voucher PDF is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", data[:8])
	}
	if filename != "VOUCHER_42_Ana_Reyes.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestGenerateVoucherFillsBlanks(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (voucherData, error) {
			return voucherData{BookingID: id}, nil
		},
	}

	data, filename, err := svc.GenerateVoucher(7)
	if err != nil {
		t.Fatalf("generate voucher: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("voucher PDF is empty")
	}
	if !strings.HasSuffix(filename, "_guest.pdf") {
		t.Fatalf("nameless guest should fall back in the filename, got %s", filename)
	}
}
