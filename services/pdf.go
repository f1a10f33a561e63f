package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"wayplan/planner"
)

// PlanPDFData is everything the exporter needs to render a user's plan.
type PlanPDFData struct {
	TravelerName string
	Groups       []planner.CityGroup
}

// GeneratePlanPDFBytes renders the grouped plan as a PDF and returns raw
// bytes (no filesystem needed).
func GeneratePlanPDFBytes(data PlanPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Wayplan", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "My Travel Plan", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Traveler Info ─────────────────────────────────────────
	sectionHeader("Traveler Information")
	name := data.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Name", name)
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Destinations ──────────────────────────────────────────
	grandTotal := 0.0

	for _, group := range data.Groups {
		title := group.City
		if group.Code != "" && group.Code != group.City {
			title = fmt.Sprintf("%s (%s)", group.City, group.Code)
		}
		if group.Country != "" && group.Country != "Unknown" {
			title += ", " + group.Country
		}
		sectionHeader(title)

		for _, f := range group.Flights {
			bd := f.Breakdown()
			grandTotal += bd.Total

			row("Flight", fmt.Sprintf("%s %s (%s)", f.Airline, f.FlightNumber, f.Cabin))
			row("Route", fmt.Sprintf("%s -> %s, %s %s-%s",
				f.OriginCode, f.DestinationCode, f.DepartureDate, f.DepartureTime, f.ArrivalTime))
			qty := f.Quantity
			if qty == 0 {
				qty = 1
			}
			row("Tickets", fmt.Sprintf("%d x $%.2f", qty, float64(f.Price)))
			row("Total incl. fees", fmt.Sprintf("$%.2f (fee $%.2f, tax $%.2f)", bd.Total, bd.AppFee, bd.Tax))
			pdf.Ln(2)
		}

		for _, h := range group.Hotels {
			row("Hotel", h.HotelName)
			row("Stay", fmt.Sprintf("%s -> %s", fmtStayDate(h.CheckInDate), fmtStayDate(h.CheckOutDate)))
			if h.Rating > 0 {
				row("Rating", fmt.Sprintf("%.1f / 5.0", h.Rating))
			}
			if total, ok := h.Total(); ok {
				grandTotal += total
				in, _ := h.CheckInTime()
				out, _ := h.CheckOutTime()
				row("Price", fmt.Sprintf("%s x %d nights = $%.2f",
					h.RatePerNight, planner.Nights(in, out), total))
			} else {
				row("Price", "unavailable — contact the property")
			}
			pdf.Ln(2)
		}

		for _, c := range group.Cars {
			label := "Rental car"
			if c.Brand != "" {
				label = c.Brand + " " + c.Model
			}
			row("Car", label)
			row("Pickup", fmt.Sprintf("%s, %s -> %s", c.Location, fmtStayDate(c.PickupDate), fmtStayDate(c.ReturnDate)))
			pdf.Ln(2)
		}

		pdf.Ln(2)
	}

	// ── Cost Summary ──────────────────────────────────────────
	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%.2f", grandTotal), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Wayplan · Not a booking confirmation · Prices subject to change",
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtStayDate(iso string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	if iso == "" {
		return "N/A"
	}
	return iso
}
