package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/stpnv0/CinemaDistrict/internal/domain"
)

const qrImageName = "booking-qr"

// Render draws a one-page A4 e-ticket for a confirmed booking.
func Render(c *domain.Confirmation) ([]byte, error) {
	b := c.Booking
	if b.Movie == nil || b.Theater == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrShowNotSelected)
	}

	qr, err := qrcode.Encode(c.BookingID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "CINEMA DISTRICT e-TICKET")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	top := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, top, 120, 55, "F")

	pdf.SetXY(20, top+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Booking ID: %s", c.BookingID)
	line(pdf, "Seats: %s", strings.Join(b.SeatIDs(), ", "))
	line(pdf, "Tickets: %d", len(b.Seats))
	line(pdf, "Total Paid: Rs. %d", c.Totals.Total)

	pdf.RegisterImageOptionsReader(qrImageName, gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qr))
	pdf.ImageOptions(qrImageName, 145, top+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(top + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Show this QR code at the entrance.")
	pdf.Ln(10)

	section(pdf, "SHOW")
	line(pdf, "Movie: %s", b.Movie.Title)
	line(pdf, "Theater: %s", b.Theater.Name)
	if b.Theater.Location != "" {
		line(pdf, "Location: %s", b.Theater.Location)
	}
	line(pdf, "Date: %s", b.Date)
	line(pdf, "Time: %s", b.Showtime)
	pdf.Ln(4)

	section(pdf, "PAYMENT")
	line(pdf, "Subtotal: Rs. %d", c.Totals.Subtotal)
	line(pdf, "Convenience fee: Rs. %d", c.Totals.ConvenienceFee)
	line(pdf, "Taxes: Rs. %d", c.Totals.Taxes)
	if c.Totals.Discount > 0 {
		line(pdf, "Discount (%s): -Rs. %d", c.Totals.PromoCode, c.Totals.Discount)
	}
	line(pdf, "Payment ID: %s", b.PaymentID)
	line(pdf, "Method: %s", b.PaymentMethod)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Please arrive 30 minutes before showtime.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 12)
}

func line(pdf *gofpdf.Fpdf, format string, args ...any) {
	pdf.Cell(0, 8, fmt.Sprintf(format, args...))
	pdf.Ln(6)
}
