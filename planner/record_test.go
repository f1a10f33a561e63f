package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalNumberOrString(t *testing.T) {
	var f FlightBooking

	require.NoError(t, json.Unmarshal([]byte(`{"price": 420.5}`), &f))
	assert.InDelta(t, 420.5, float64(f.Price), 1e-9)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "$150.50"}`), &f))
	assert.InDelta(t, 150.5, float64(f.Price), 1e-9)

	// Malformed prices degrade to zero, they do not fail the record.
	require.NoError(t, json.Unmarshal([]byte(`{"price": "N/A"}`), &f))
	assert.Zero(t, float64(f.Price))
}

func TestDecodeBooking(t *testing.T) {
	b, ok := DecodeBooking(KindHotel, []byte(`{"hotel_name":"Grand City Hotel","city":"Bangkok"}`))
	require.True(t, ok)

	h, isHotel := b.(HotelBooking)
	require.True(t, isHotel)
	assert.Equal(t, "Grand City Hotel", h.HotelName)
	assert.Equal(t, KindHotel, h.BookingKind())

	_, ok = DecodeBooking(Kind("cruise"), []byte(`{}`))
	assert.False(t, ok)
}

func TestHotelBooking_StayDateFormats(t *testing.T) {
	h := HotelBooking{
		CheckInDate:  "2024-06-01T15:00:00Z",
		CheckOutDate: "2024-06-04",
	}

	in, ok := h.CheckInTime()
	require.True(t, ok)
	assert.Equal(t, 2024, in.Year())

	out, ok := h.CheckOutTime()
	require.True(t, ok)
	assert.Equal(t, 4, out.Day())

	h.CheckOutDate = "someday"
	_, ok = h.CheckOutTime()
	assert.False(t, ok)
}
