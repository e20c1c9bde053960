package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tourism/internal/repositories"
	"tourism/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking voucher PDF handed to tourists.
type DocsService struct {
	BookingRepo     repositories.BookingRepository
	DestinationRepo repositories.DestinationRepository
	RequestID       string
	Loader          func(int64) (voucherData, error)
}

type voucherData struct {
	BookingID       int64
	DestinationName string
	Location        string
	GuestName       string
	Phone           string
	BookingDate     string
	BookingTime     string
	BookingType     string
	Adults          int
	Children        int
	PaymentMethod   string
	Total           float64
	Status          string
	PaymentStatus   string
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	data, err := s.loadVoucherData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(data)
}

func (s DocsService) loadVoucherData(bookingID int64) (voucherData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return voucherData{}, err
	}
	out := voucherData{
		BookingID:     b.ID,
		GuestName:     strings.TrimSpace(b.FirstName + " " + b.LastName),
		Phone:         b.Phone,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		BookingType:   string(b.Type),
		Adults:        b.Adults,
		Children:      b.Children,
		PaymentMethod: string(b.PaymentMethod),
		Total:         b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: b.PaymentStatus,
	}
	if dest, err := s.DestinationRepo.GetByID(b.DestinationID); err == nil {
		out.DestinationName = dest.Name
		out.Location = dest.Location
	}
	return out, nil
}

func buildVoucherPDF(d voucherData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Voucher No     : VCH-%d", d.BookingID),
		fmt.Sprintf("Guest          : %s", safe(d.GuestName, "-")),
		fmt.Sprintf("Phone          : %s", safe(d.Phone, "-")),
		fmt.Sprintf("Destination    : %s", safe(d.DestinationName, "-")),
		fmt.Sprintf("Location       : %s", safe(d.Location, "-")),
		fmt.Sprintf("Date / Time    : %s %s", safe(d.BookingDate, "-"), safe(d.BookingTime, "-")),
		fmt.Sprintf("Booking Type   : %s", safe(d.BookingType, "-")),
		fmt.Sprintf("Guests         : %d adult(s), %d child(ren)", d.Adults, d.Children),
		fmt.Sprintf("Payment Method : %s", safe(d.PaymentMethod, "-")),
		fmt.Sprintf("Total          : %s", utils.FormatPeso(d.Total)),
		fmt.Sprintf("Status         : %s / %s", safe(d.Status, "-"), safe(d.PaymentStatus, "-")),
		fmt.Sprintf("Issued         : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher on arrival. The voucher covers all listed guests for the stated date and time slot.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", d.BookingID, safeFilenamePart(d.GuestName))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "guest"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
