package planner

import (
	"strings"

	"wayplan/directory"
)

// Resolution is the canonical grouping identity derived from one record.
type Resolution struct {
	Key     string // uppercased location key, "UNKNOWN" when nothing usable
	City    string // display city name
	Country string // directory country, or "Unknown"
}

const (
	unknownKey     = "UNKNOWN"
	unknownCity    = "Unknown Location"
	unknownCountry = "Unknown"
)

// Normalize derives the location key and display city for a booking.
// Flights group by destination (where the traveler is going, not where
// they depart from); hotels resolve through their stored code then their
// free-text city; cars resolve through their free-text location. The
// result is deterministic for a given input and never panics — a record
// the directory cannot place still gets a stable fallback key.
func Normalize(b Booking, dir *directory.Directory) Resolution {
	switch r := b.(type) {
	case FlightBooking:
		return resolveCode(r.DestinationCode, dir)
	case HotelBooking:
		return resolvePlace(r.LocationCode, r.City, dir)
	case CarBooking:
		return resolvePlace("", r.Location, dir)
	}
	return Resolution{Key: unknownKey, City: unknownCity, Country: unknownCountry}
}

// resolveCode handles inputs that are supposed to be 3-letter codes.
func resolveCode(code string, dir *directory.Directory) Resolution {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Resolution{Key: unknownKey, City: unknownCity, Country: unknownCountry}
	}
	if e, ok := dir.Lookup(code); ok {
		return Resolution{Key: code, City: e.City, Country: e.Country}
	}
	// Unresolvable code still groups under itself.
	return Resolution{Key: code, City: code, Country: unknownCountry}
}

// placeResolver is one strategy in the hotel/car resolution chain.
type placeResolver func(code, place string, dir *directory.Directory) (Resolution, bool)

// placeChain is tried in order; the first strategy that claims the input
// wins. Order matters: explicit codes beat exact city matches beat
// substring matches beat the raw-text fallback.
var placeChain = []placeResolver{
	byStoredCode,
	byExactCity,
	bySubstring,
}

// resolvePlace resolves a record that carries an optional code plus a
// free-text place name (hotel city, car pickup location).
func resolvePlace(code, place string, dir *directory.Directory) Resolution {
	for _, resolve := range placeChain {
		if res, ok := resolve(code, place, dir); ok {
			return res
		}
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return Resolution{Key: unknownKey, City: unknownCity, Country: unknownCountry}
	}
	return Resolution{Key: strings.ToUpper(place), City: place, Country: unknownCountry}
}

func byStoredCode(code, _ string, dir *directory.Directory) (Resolution, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Resolution{}, false
	}
	if e, ok := dir.Lookup(code); ok {
		return Resolution{Key: code, City: e.City, Country: e.Country}, true
	}
	return Resolution{}, false
}

func byExactCity(_, place string, dir *directory.Directory) (Resolution, bool) {
	place = strings.TrimSpace(place)
	if place == "" {
		return Resolution{}, false
	}
	for _, e := range dir.All() {
		if strings.EqualFold(e.City, place) {
			return Resolution{Key: strings.ToUpper(e.Code), City: e.City, Country: e.Country}, true
		}
	}
	return Resolution{}, false
}

// bySubstring matches the place against directory city and airport names
// in either direction, so "Bali Denpasar" finds Denpasar and "Changi"
// finds Singapore.
func bySubstring(_, place string, dir *directory.Directory) (Resolution, bool) {
	place = strings.ToLower(strings.TrimSpace(place))
	if len(place) < 3 {
		return Resolution{}, false
	}
	for _, e := range dir.All() {
		city := strings.ToLower(e.City)
		name := strings.ToLower(e.Name)
		if strings.Contains(place, city) || strings.Contains(city, place) ||
			strings.Contains(name, place) {
			return Resolution{Key: strings.ToUpper(e.Code), City: e.City, Country: e.Country}, true
		}
	}
	return Resolution{}, false
}
