package planner

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Fee schedule applied to flight bookings. One percent application fee
// plus eleven percent tax, computed on the base price.
const (
	appFeeRate = 0.01
	taxRate    = 0.11
)

// CostBreakdown is the deterministic price decomposition for a flight
// booking. BasePrice, AppFee and Tax are raw products; Total is rounded
// to cents so displayed sums never show float dust.
type CostBreakdown struct {
	BasePrice float64 `json:"base_price"`
	AppFee    float64 `json:"app_fee"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// ParsePrice extracts a numeric amount from a display price such as
// "$150.50" or "USD 1,200". Everything except digits, '.' and '-' is
// stripped before parsing; anything unparsable degrades to 0 so a
// malformed price renders as unavailable instead of breaking the view.
func ParsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, ok := parseFloat(b.String())
	if !ok {
		return 0
	}
	return v
}

// FlightTotal computes the price breakdown for quantity tickets at the
// given unit price. Quantity is trusted to be in [1,9] — callers clamp at
// the API boundary before a record is stored; a negative quantity yields a
// negative total rather than an error since this is pure arithmetic.
func FlightTotal(unitPrice Price, quantity int) CostBreakdown {
	base := float64(unitPrice) * float64(quantity)
	fee := base * appFeeRate
	tax := base * taxRate
	return CostBreakdown{
		BasePrice: base,
		AppFee:    fee,
		Tax:       tax,
		Total:     roundCents(base + fee + tax),
	}
}

// Breakdown is FlightTotal applied to the booking's own price and quantity.
func (f FlightBooking) Breakdown() CostBreakdown {
	qty := f.Quantity
	if qty == 0 {
		qty = 1
	}
	return FlightTotal(f.Price, qty)
}

// HotelTotal computes nights × nightly rate from a display rate string
// like "$120/night". The rate is extracted by stripping every non-digit
// character — decimal points included, matching how the booking flow has
// always read these strings ("$99.50" reads as 9950). A rate with no
// digits reports ok=false so the caller can render "price unavailable".
// Date order is not validated here; the booking flow rejects
// checkOut <= checkIn before a record exists.
func HotelTotal(rateDisplay string, checkIn, checkOut time.Time) (float64, bool) {
	rate, ok := parseNightlyRate(rateDisplay)
	if !ok {
		return 0, false
	}
	return rate * float64(Nights(checkIn, checkOut)), true
}

// Total recomputes the stay cost from the record's own dates. Stored
// totals are never trusted — dates are the single source of truth.
func (h HotelBooking) Total() (float64, bool) {
	in, okIn := h.CheckInTime()
	out, okOut := h.CheckOutTime()
	if !okIn || !okOut {
		return 0, false
	}
	return HotelTotal(h.RatePerNight, in, out)
}

// Nights counts the nights between check-in and check-out, rounding any
// partial day up.
func Nights(checkIn, checkOut time.Time) int {
	span := checkOut.Sub(checkIn)
	return int(math.Ceil(span.Hours() / 24))
}

func parseNightlyRate(display string) (float64, bool) {
	var b strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	return parseFloat(b.String())
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
