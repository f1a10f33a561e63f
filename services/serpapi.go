package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// HotelResult is one hotel in the shape the frontend adds to a plan. The
// nightly rate stays a display string ("$120") — the planner's cost
// calculator owns extracting the number from it.
type HotelResult struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	RatePerNight string   `json:"rate_per_night"`
	Rating       float64  `json:"overall_rating"`
	Reviews      int      `json:"reviews,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	CheckInTime  string   `json:"check_in_time,omitempty"`
	CheckOutTime string   `json:"check_out_time,omitempty"`
	Images       []string `json:"images,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// ─── SerpAPI Client ───────────────────────────────────────────────────────────

type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var serpClient *SerpAPIClient

func InitSerpAPI() {
	serpClient = &SerpAPIClient{
		apiKey:  os.Getenv("SERPAPI_KEY"),
		baseURL: "https://serpapi.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if serpClient.apiKey != "" {
		log.Println("✅ SerpAPI (Google Hotels) initialized")
	} else {
		log.Println("⚠️  SERPAPI_KEY not set — hotel search will use fallback data")
	}
}

func GetSerpAPIClient() *SerpAPIClient {
	return serpClient
}

func (c *SerpAPIClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

// ─── Hotel Search ─────────────────────────────────────────────────────────────

type serpHotelsResponse struct {
	Error      string `json:"error,omitempty"`
	Properties []struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		CheckInTime  string `json:"check_in_time"`
		CheckOutTime string `json:"check_out_time"`
		RatePerNight struct {
			Lowest string `json:"lowest"`
		} `json:"rate_per_night"`
		OverallRating float64  `json:"overall_rating"`
		Reviews       int      `json:"reviews"`
		Amenities     []string `json:"amenities"`
		Images        []struct {
			OriginalImage string `json:"original_image"`
			Thumbnail     string `json:"thumbnail"`
		} `json:"images"`
		Link string `json:"link"`
	} `json:"properties"`
}

// SearchHotels queries the Google Hotels engine for a destination and stay
// window.
func (c *SerpAPIClient) SearchHotels(destination, checkIn, checkOut string, adults int) ([]HotelResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("serpapi not configured")
	}

	q := url.Values{}
	q.Set("engine", "google_hotels")
	q.Set("q", destination)
	q.Set("check_in_date", checkIn)
	q.Set("check_out_date", checkOut)
	q.Set("adults", fmt.Sprintf("%d", adults))
	q.Set("currency", "USD")
	q.Set("gl", "us")
	q.Set("hl", "en")
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequest("GET", c.baseURL+"/search.json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi error (%d): %s", resp.StatusCode, string(body))
	}

	return parseHotelProperties(body)
}

func parseHotelProperties(data []byte) ([]HotelResult, error) {
	var resp serpHotelsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("serpapi error: %s", resp.Error)
	}

	hotels := make([]HotelResult, 0, len(resp.Properties))
	for _, p := range resp.Properties {
		if p.Name == "" {
			continue
		}

		images := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			if img.OriginalImage != "" {
				images = append(images, img.OriginalImage)
			} else if img.Thumbnail != "" {
				images = append(images, img.Thumbnail)
			}
		}

		rate := p.RatePerNight.Lowest
		if rate == "" {
			rate = "N/A"
		}

		hotels = append(hotels, HotelResult{
			Name:         p.Name,
			Description:  p.Description,
			RatePerNight: rate,
			Rating:       p.OverallRating,
			Reviews:      p.Reviews,
			Amenities:    p.Amenities,
			CheckInTime:  p.CheckInTime,
			CheckOutTime: p.CheckOutTime,
			Images:       images,
			Link:         p.Link,
		})
	}

	return hotels, nil
}

// ─── Fallback (when SerpAPI is not configured or fails) ──────────────────────

// GenerateHotelsFallback produces plausible hotel data without an API key.
func GenerateHotelsFallback(destination string) []HotelResult {
	cityHotels := map[string][]HotelResult{
		"SIN": {
			{Name: "Marina Bay Sands", RatePerNight: "$380", Rating: 4.6, Amenities: []string{"Pool", "Spa", "Free Wi-Fi"}},
			{Name: "Hotel Boss", RatePerNight: "$95", Rating: 4.0, Amenities: []string{"Free Wi-Fi", "Restaurant"}},
			{Name: "The Fullerton Hotel", RatePerNight: "$290", Rating: 4.7, Amenities: []string{"Pool", "Bar", "Gym"}},
			{Name: "Hotel G Singapore", RatePerNight: "$130", Rating: 4.2, Amenities: []string{"Free Wi-Fi", "Restaurant"}},
		},
		"BKK": {
			{Name: "Mandarin Oriental Bangkok", RatePerNight: "$420", Rating: 4.8, Amenities: []string{"Pool", "Spa", "River view"}},
			{Name: "Ibis Bangkok Riverside", RatePerNight: "$45", Rating: 4.1, Amenities: []string{"Pool", "Free Wi-Fi"}},
			{Name: "Chatrium Hotel Riverside", RatePerNight: "$110", Rating: 4.5, Amenities: []string{"Pool", "Gym", "Free Wi-Fi"}},
		},
		"DPS": {
			{Name: "Padma Resort Legian", RatePerNight: "$180", Rating: 4.7, Amenities: []string{"Pool", "Beachfront", "Spa"}},
			{Name: "Kuta Beach Hostel", RatePerNight: "$25", Rating: 3.9, Amenities: []string{"Free Wi-Fi"}},
			{Name: "The Seminyak Beach Resort", RatePerNight: "$240", Rating: 4.6, Amenities: []string{"Pool", "Beachfront", "Bar"}},
		},
		"KUL": {
			{Name: "Traders Hotel Kuala Lumpur", RatePerNight: "$120", Rating: 4.5, Amenities: []string{"Pool", "Sky bar"}},
			{Name: "Hotel Istana", RatePerNight: "$75", Rating: 4.1, Amenities: []string{"Pool", "Free Wi-Fi"}},
		},
	}

	if hotels, ok := cityHotels[destination]; ok {
		return hotels
	}

	// Generic fallback
	return []HotelResult{
		{Name: "Grand City Hotel", RatePerNight: "$150", Rating: 4.5, Amenities: []string{"Pool", "Free Wi-Fi"}},
		{Name: "Business Inn", RatePerNight: "$95", Rating: 4.2, Amenities: []string{"Free Wi-Fi", "Breakfast"}},
		{Name: "Boutique Residence", RatePerNight: "$120", Rating: 4.4, Amenities: []string{"Free Wi-Fi", "Bar"}},
		{Name: "Economy Suites", RatePerNight: "$65", Rating: 3.9, Amenities: []string{"Free Wi-Fi"}},
	}
}
