package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// FlightOffer is one searchable flight in the shape the frontend adds to a
// plan: display times, 3-letter codes, a numeric USD price.
type FlightOffer struct {
	Airline         string  `json:"airline"`
	AirlineCode     string  `json:"airline_code,omitempty"`
	FlightNumber    string  `json:"flight_number"`
	OriginCode      string  `json:"origin_code"`
	DestinationCode string  `json:"destination_code"`
	DepartureDate   string  `json:"departure_date"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Duration        string  `json:"duration,omitempty"`
	Stops           int     `json:"stops"`
	Cabin           string  `json:"cabin"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency,omitempty"`
	Seats           int     `json:"number_of_bookable_seats,omitempty"`
}

// AirportHit is one result from the airport keyword search.
type AirportHit struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
}

var amadeusClient *AmadeusClient

func InitAmadeus() {
	env := os.Getenv("AMADEUS_ENV")
	baseURL := "https://api.amadeus.com" // production
	if env == "" || env == "test" {
		baseURL = "https://test.api.amadeus.com" // free test environment
	}

	amadeusClient = &AmadeusClient{
		clientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		clientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if amadeusClient.clientID == "" || amadeusClient.clientSecret == "" {
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set — flight search will use fallback data")
		return
	}

	// Pre-warm the token
	if err := amadeusClient.refreshToken(); err != nil {
		log.Printf("⚠️  Amadeus token pre-warm failed: %v", err)
	} else {
		log.Println("✅ Amadeus API authenticated")
	}
}

func GetAmadeusClient() *AmadeusClient {
	return amadeusClient
}

// Configured reports whether live flight search is available.
func (c *AmadeusClient) Configured() bool {
	return c != nil && c.clientID != "" && c.clientSecret != ""
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequest("POST",
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %v", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken() (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(path string) ([]byte, error) {
	token, err := c.getToken()
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchFlights searches one-way flights via the Amadeus Flight Offers
// Search API.
func (c *AmadeusClient) SearchFlights(origin, destination, departureDate string, adults int) ([]FlightOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus not configured")
	}

	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&adults=%d&max=10&currencyCode=USD",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		url.QueryEscape(departureDate),
		adults,
	)

	body, err := c.doRequest(path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	return parseFlightOffers(body)
}

// Amadeus flight offers response structures
type amadeusFlightOffersResponse struct {
	Data []amadeusFlightOffer `json:"data"`
}

type amadeusFlightOffer struct {
	NumberOfBookableSeats int `json:"numberOfBookableSeats"`
	Price                 struct {
		GrandTotal string `json:"grandTotal"`
		Currency   string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"arrival"`
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
		} `json:"segments"`
	} `json:"itineraries"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			Cabin string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

func parseFlightOffers(data []byte) ([]FlightOffer, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	offers := make([]FlightOffer, 0, len(resp.Data))

	for _, raw := range resp.Data {
		if len(raw.Itineraries) < 1 || len(raw.Itineraries[0].Segments) < 1 {
			continue
		}

		price := parsePrice(raw.Price.GrandTotal)
		if price <= 0 {
			continue
		}

		it := raw.Itineraries[0]
		first := it.Segments[0]
		last := it.Segments[len(it.Segments)-1]

		airlineCode := first.CarrierCode
		if airlineCode == "" && len(raw.ValidatingAirlineCodes) > 0 {
			airlineCode = raw.ValidatingAirlineCodes[0]
		}

		cabin := "ECONOMY"
		if len(raw.TravelerPricings) > 0 && len(raw.TravelerPricings[0].FareDetailsBySegment) > 0 {
			cabin = raw.TravelerPricings[0].FareDetailsBySegment[0].Cabin
		}

		offers = append(offers, FlightOffer{
			Airline:         airlineName(airlineCode),
			AirlineCode:     airlineCode,
			FlightNumber:    airlineCode + first.Number,
			OriginCode:      first.Departure.IataCode,
			DestinationCode: last.Arrival.IataCode,
			DepartureDate:   datePart(first.Departure.At),
			DepartureTime:   timePart(first.Departure.At),
			ArrivalTime:     timePart(last.Arrival.At),
			Duration:        parseDuration(it.Duration),
			Stops:           len(it.Segments) - 1,
			Cabin:           cabin,
			Price:           price,
			Currency:        raw.Price.Currency,
			Seats:           raw.NumberOfBookableSeats,
		})
	}

	return offers, nil
}

// ─── Airport Search ───────────────────────────────────────────────────────────

// SearchAirports looks up airports by keyword via the Amadeus reference
// data API, for destinations outside the built-in directory.
func (c *AmadeusClient) SearchAirports(keyword string) ([]AirportHit, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus not configured")
	}

	path := fmt.Sprintf("/v1/reference-data/locations?subType=AIRPORT&keyword=%s",
		url.QueryEscape(keyword))

	body, err := c.doRequest(path)
	if err != nil {
		return nil, fmt.Errorf("airport search failed: %w", err)
	}

	var resp struct {
		Data []struct {
			IataCode string `json:"iataCode"`
			Name     string `json:"name"`
			Address  struct {
				CityName    string `json:"cityName"`
				CountryName string `json:"countryName"`
			} `json:"address"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse airport search: %w", err)
	}

	hits := make([]AirportHit, 0, len(resp.Data))
	for _, d := range resp.Data {
		hits = append(hits, AirportHit{
			Code:    d.IataCode,
			Name:    d.Name,
			City:    d.Address.CityName,
			Country: d.Address.CountryName,
		})
	}
	return hits, nil
}

// ─── Fallback (when Amadeus is not configured or fails) ──────────────────────

// GenerateFlightsFallback produces plausible flight data without an API
// key. Responses built from it are labeled as estimated.
func GenerateFlightsFallback(origin, destination, departureDate string) []FlightOffer {
	type routeInfo struct {
		basePrice float64
		duration  int // minutes
	}

	routes := map[string]routeInfo{
		"SIN-BKK": {120, 150}, "BKK-SIN": {120, 150},
		"SIN-DPS": {160, 160}, "DPS-SIN": {160, 160},
		"SIN-KUL": {70, 65}, "KUL-SIN": {70, 65},
		"BKK-HAN": {110, 110}, "HAN-BKK": {110, 110},
		"SIN-MNL": {180, 220}, "MNL-SIN": {180, 220},
		"DPS-BKK": {190, 260}, "BKK-DPS": {190, 260},
		"SGN-SIN": {130, 130}, "SIN-SGN": {130, 130},
	}

	key := origin + "-" + destination
	info, ok := routes[key]
	if !ok {
		info = routeInfo{150, 180}
	}

	type airlineOption struct {
		code     string
		name     string
		priceMod float64
		cabin    string
		stops    int
	}
	options := []airlineOption{
		{"SQ", "Singapore Airlines", 1.30, "BUSINESS", 0},
		{"TG", "Thai Airways", 1.10, "ECONOMY", 0},
		{"GA", "Garuda Indonesia", 1.00, "ECONOMY", 0},
		{"AK", "AirAsia", 0.60, "ECONOMY", 1},
		{"TR", "Scoot", 0.70, "ECONOMY", 1},
	}

	depDate, _ := time.Parse("2006-01-02", departureDate)

	offers := make([]FlightOffer, 0, len(options))
	for i, opt := range options {
		price := info.basePrice * opt.priceMod
		price = float64(int(price/5) * 5)

		dur := info.duration
		if opt.stops > 0 {
			dur += 90
		}

		depTime := time.Date(depDate.Year(), depDate.Month(), depDate.Day(), 6+i*3, 0, 0, 0, time.UTC)
		arrTime := depTime.Add(time.Duration(dur) * time.Minute)

		offers = append(offers, FlightOffer{
			Airline:         opt.name,
			AirlineCode:     opt.code,
			FlightNumber:    fmt.Sprintf("%s%d", opt.code, 100+i*37),
			OriginCode:      origin,
			DestinationCode: destination,
			DepartureDate:   departureDate,
			DepartureTime:   depTime.Format("15:04"),
			ArrivalTime:     arrTime.Format("15:04"),
			Duration:        formatDurationMin(dur),
			Stops:           opt.stops,
			Cabin:           opt.cabin,
			Price:           price,
			Currency:        "USD",
		})
	}
	return offers
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// parseDuration converts ISO 8601 duration (PT5H30M) to human readable (5h 30m)
func parseDuration(iso string) string {
	if iso == "" {
		return ""
	}
	iso = strings.TrimPrefix(iso, "PT")
	result := ""
	hIdx := strings.Index(iso, "H")
	mIdx := strings.Index(iso, "M")
	if hIdx >= 0 {
		result += iso[:hIdx] + "h"
		iso = iso[hIdx+1:]
		mIdx = strings.Index(iso, "M")
	}
	if mIdx >= 0 && mIdx < len(iso) {
		if result != "" {
			result += " "
		}
		result += iso[:mIdx] + "m"
	}
	return result
}

func formatDurationMin(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

func parsePrice(s string) float64 {
	var price float64
	fmt.Sscanf(s, "%f", &price)
	return price
}

// datePart and timePart split Amadeus timestamps (2024-06-01T09:35:00)
// into the display fields plan records store.
func datePart(at string) string {
	if i := strings.Index(at, "T"); i > 0 {
		return at[:i]
	}
	return at
}

func timePart(at string) string {
	if t, err := time.Parse("2006-01-02T15:04:05", at); err == nil {
		return t.Format("15:04")
	}
	return at
}

// airlineName returns the full airline name for an IATA carrier code.
func airlineName(code string) string {
	names := map[string]string{
		"SQ": "Singapore Airlines",
		"TG": "Thai Airways",
		"GA": "Garuda Indonesia",
		"MH": "Malaysia Airlines",
		"PR": "Philippine Airlines",
		"VN": "Vietnam Airlines",
		"AK": "AirAsia",
		"TR": "Scoot",
		"QZ": "Indonesia AirAsia",
		"ID": "Batik Air",
		"JQ": "Jetstar",
		"CX": "Cathay Pacific",
		"EK": "Emirates",
		"QR": "Qatar Airways",
		"NH": "ANA",
		"JL": "Japan Airlines",
		"KE": "Korean Air",
		"BA": "British Airways",
		"LH": "Lufthansa",
		"AF": "Air France",
		"KL": "KLM",
		"UA": "United Airlines",
		"DL": "Delta Air Lines",
	}
	if name, ok := names[code]; ok {
		return name
	}
	if code != "" {
		return code + " Airlines"
	}
	return "Unknown Airline"
}
