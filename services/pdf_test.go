package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayplan/planner"
)

func TestGeneratePlanPDFBytes(t *testing.T) {
	data := PlanPDFData{
		TravelerName: "Alice",
		Groups: []planner.CityGroup{
			{
				Code:    "SIN",
				City:    "Singapore",
				Country: "Singapore",
				Flights: []planner.FlightBooking{
					{
						Meta:            planner.Meta{ID: "f1"},
						Airline:         "Singapore Airlines",
						FlightNumber:    "SQ706",
						OriginCode:      "BKK",
						DestinationCode: "SIN",
						DepartureDate:   "2024-06-01",
						DepartureTime:   "09:35",
						ArrivalTime:     "11:05",
						Cabin:           "ECONOMY",
						Price:           185.40,
						Quantity:        2,
					},
				},
				Hotels: []planner.HotelBooking{
					{
						Meta:         planner.Meta{ID: "h1"},
						HotelName:    "Marina Bay Sands",
						City:         "Singapore",
						CheckInDate:  "2024-06-01",
						CheckOutDate: "2024-06-04",
						RatePerNight: "$380",
						Rating:       4.6,
					},
					{
						Meta:         planner.Meta{ID: "h2"},
						HotelName:    "Mystery Hotel",
						CheckInDate:  "2024-06-01",
						CheckOutDate: "2024-06-02",
						RatePerNight: "Contact us",
					},
				},
				Cars: []planner.CarBooking{
					{
						Meta:       planner.Meta{ID: "c1"},
						Brand:      "Toyota",
						Model:      "Vios",
						Location:   "Singapore",
						PickupDate: "2024-06-01",
						ReturnDate: "2024-06-04",
					},
				},
			},
		},
	}

	pdfBytes, err := GeneratePlanPDFBytes(data)

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGeneratePlanPDFBytes_EmptyPlan(t *testing.T) {
	pdfBytes, err := GeneratePlanPDFBytes(PlanPDFData{})

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
