package planner

import (
	"encoding/json"
	"strings"
	"time"
)

// Kind discriminates the three booking variants.
type Kind string

const (
	KindFlight Kind = "flight"
	KindHotel  Kind = "hotel"
	KindCar    Kind = "car"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFlight, KindHotel, KindCar:
		return true
	}
	return false
}

// Meta holds the fields shared by every booking record. ID and CreatedAt
// are assigned by the store at creation time and never change afterwards.
type Meta struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Booking is the tagged union over flight/hotel/car records. Consumers
// type-switch on the concrete type rather than probing optional fields.
type Booking interface {
	BookingID() string
	BookingKind() Kind
}

// Price is a non-negative amount that external data may deliver either as
// a JSON number or as a display string ("$150.50"). Malformed strings
// decode to zero rather than failing the whole record.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*p = 0
		return nil
	}
	*p = Price(ParsePrice(s))
	return nil
}

type FlightBooking struct {
	Meta
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flight_number"`
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`
	DepartureDate   string `json:"departure_date"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	Cabin           string `json:"cabin"`
	Price           Price  `json:"price"`
	Quantity        int    `json:"quantity"`
}

type HotelBooking struct {
	Meta
	HotelName    string   `json:"hotel_name"`
	LocationCode string   `json:"location_code,omitempty"`
	City         string   `json:"city,omitempty"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	RatePerNight string   `json:"rate_per_night"`
	Amenities    []string `json:"amenities,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
}

type CarBooking struct {
	Meta
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Location     string `json:"location"`
	PickupDate   string `json:"pickup_date"`
	ReturnDate   string `json:"return_date"`
	PricePerDay  Price  `json:"price_per_day,omitempty"`
	Seats        int    `json:"seats,omitempty"`
	Transmission string `json:"transmission,omitempty"`
}

func (f FlightBooking) BookingID() string { return f.ID }
func (h HotelBooking) BookingID() string  { return h.ID }
func (c CarBooking) BookingID() string    { return c.ID }

func (FlightBooking) BookingKind() Kind { return KindFlight }
func (HotelBooking) BookingKind() Kind  { return KindHotel }
func (CarBooking) BookingKind() Kind    { return KindCar }

// DecodeBooking unmarshals a stored payload into the record variant for
// kind. Unknown kinds report false; a syntactically broken payload still
// yields a zero-valued record so the plan entry is not silently lost.
func DecodeBooking(kind Kind, payload []byte) (Booking, bool) {
	switch kind {
	case KindFlight:
		var f FlightBooking
		json.Unmarshal(payload, &f)
		return f, true
	case KindHotel:
		var h HotelBooking
		json.Unmarshal(payload, &h)
		return h, true
	case KindCar:
		var c CarBooking
		json.Unmarshal(payload, &c)
		return c, true
	}
	return nil, false
}

// CheckInTime parses the hotel check-in date, accepting both full RFC 3339
// timestamps (how the booking UI stores them) and bare YYYY-MM-DD dates.
func (h HotelBooking) CheckInTime() (time.Time, bool)  { return parseStayDate(h.CheckInDate) }
func (h HotelBooking) CheckOutTime() (time.Time, bool) { return parseStayDate(h.CheckOutDate) }

func parseStayDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
