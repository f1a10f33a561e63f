package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayplan/services"
)

type FlightSearchRequest struct {
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
	Adults        int    `json:"adults"`
}

type FlightSearchResponse struct {
	Flights []services.FlightOffer `json:"flights"`
	Source  string                 `json:"source"` // "live" or "estimated"
}

func FlightSearchHandler(c *gin.Context) {
	var req FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))

	if req.Adults <= 0 {
		req.Adults = 1
	}

	// Validate airport code length
	if len(req.Origin) != 3 || len(req.Destination) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airport codes must be exactly 3 characters (e.g. SIN, BKK)"})
		return
	}

	if _, err := time.Parse("2006-01-02", req.DepartureDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure date format. Use YYYY-MM-DD"})
		return
	}

	// ── Try Amadeus live data ──────────────────────────────────────────────────
	var flights []services.FlightOffer
	source := "live"

	amadeusClient := services.GetAmadeusClient()
	if amadeusClient.Configured() {
		liveFlights, err := amadeusClient.SearchFlights(req.Origin, req.Destination, req.DepartureDate, req.Adults)
		if err != nil {
			log.Printf("⚠️  Amadeus flight search failed: %v — using fallback", err)
		} else if len(liveFlights) == 0 {
			log.Println("⚠️  Amadeus returned 0 flights — using fallback")
		} else {
			flights = liveFlights
			log.Printf("✅ Amadeus: %d live flights found", len(flights))
		}
	}

	if flights == nil {
		flights = services.GenerateFlightsFallback(req.Origin, req.Destination, req.DepartureDate)
		source = "estimated"
	}

	c.JSON(http.StatusOK, FlightSearchResponse{Flights: flights, Source: source})
}

type HotelSearchRequest struct {
	Destination string `json:"destination" binding:"required"`
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	Adults      int    `json:"adults"`
}

type HotelSearchResponse struct {
	Hotels []services.HotelResult `json:"hotels"`
	Source string                 `json:"source"`
}

func HotelSearchHandler(c *gin.Context) {
	var req HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in date format. Use YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-out date format. Use YYYY-MM-DD"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
		return
	}

	if req.Adults <= 0 {
		req.Adults = 2
	}

	// Prefer the city name for the hotels query when the destination is a
	// known code, same as searching Google Hotels by hand.
	query := req.Destination
	if e, ok := locations.Lookup(req.Destination); ok {
		query = e.City
	}

	var hotels []services.HotelResult
	source := "live"

	serp := services.GetSerpAPIClient()
	if serp.Configured() {
		liveHotels, err := serp.SearchHotels(query, req.CheckIn, req.CheckOut, req.Adults)
		if err != nil {
			log.Printf("⚠️  SerpAPI hotel search failed: %v — using fallback", err)
		} else if len(liveHotels) == 0 {
			log.Println("⚠️  SerpAPI returned 0 hotels — using fallback")
		} else {
			hotels = liveHotels
			log.Printf("✅ SerpAPI: %d live hotels found", len(hotels))
		}
	}

	if hotels == nil {
		hotels = services.GenerateHotelsFallback(strings.ToUpper(strings.TrimSpace(req.Destination)))
		source = "estimated"
	}

	c.JSON(http.StatusOK, HotelSearchResponse{Hotels: hotels, Source: source})
}
