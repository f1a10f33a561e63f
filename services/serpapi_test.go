package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hotelsFixture = `{
  "properties": [
    {
      "name": "Marina Bay Sands",
      "description": "Iconic resort",
      "check_in_time": "3:00 PM",
      "check_out_time": "11:00 AM",
      "rate_per_night": {"lowest": "$380"},
      "overall_rating": 4.6,
      "reviews": 12873,
      "amenities": ["Pool", "Spa"],
      "images": [
        {"original_image": "https://example.com/mbs.jpg"},
        {"thumbnail": "https://example.com/mbs-thumb.jpg"}
      ],
      "link": "https://example.com/mbs"
    },
    {
      "name": "Budget Stay",
      "rate_per_night": {}
    },
    {
      "name": ""
    }
  ]
}`

func TestParseHotelProperties(t *testing.T) {
	hotels, err := parseHotelProperties([]byte(hotelsFixture))

	require.NoError(t, err)
	// Nameless properties are dropped; everything else survives.
	require.Len(t, hotels, 2)

	h := hotels[0]
	assert.Equal(t, "Marina Bay Sands", h.Name)
	assert.Equal(t, "$380", h.RatePerNight)
	assert.InDelta(t, 4.6, h.Rating, 1e-9)
	assert.Equal(t, []string{"Pool", "Spa"}, h.Amenities)
	require.Len(t, h.Images, 2)
	assert.Equal(t, "https://example.com/mbs.jpg", h.Images[0])

	// A missing rate renders as N/A so the planner reports it unavailable.
	assert.Equal(t, "N/A", hotels[1].RatePerNight)
}

func TestParseHotelProperties_APIError(t *testing.T) {
	_, err := parseHotelProperties([]byte(`{"error": "rate limit hit"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestGenerateHotelsFallback(t *testing.T) {
	hotels := GenerateHotelsFallback("SIN")
	require.NotEmpty(t, hotels)
	assert.Equal(t, "Marina Bay Sands", hotels[0].Name)

	generic := GenerateHotelsFallback("XYZ")
	require.NotEmpty(t, generic)
	for _, h := range generic {
		assert.NotEmpty(t, h.RatePerNight)
	}
}
