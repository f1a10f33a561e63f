package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCity_EmptyInput(t *testing.T) {
	groups := GroupByCity(nil, testDirectory())
	assert.Empty(t, groups)

	groups = GroupByCity([]Booking{}, testDirectory())
	assert.Empty(t, groups)
}

func TestGroupByCity_NoRecordLostOrDuplicated(t *testing.T) {
	dir := testDirectory()
	records := []Booking{
		FlightBooking{Meta: Meta{ID: "f1"}, DestinationCode: "SIN"},
		HotelBooking{Meta: Meta{ID: "h1"}, City: "Singapore"},
		CarBooking{Meta: Meta{ID: "c1"}, Location: "Bangkok"},
		FlightBooking{Meta: Meta{ID: "f2"}, DestinationCode: "BKK"},
		HotelBooking{Meta: Meta{ID: "h2"}, City: "Nowhereville"},
		FlightBooking{Meta: Meta{ID: "f3"}, DestinationCode: ""},
	}

	groups := GroupByCity(records, dir)

	total := 0
	for _, g := range groups {
		total += g.Size()
	}
	assert.Equal(t, len(records), total)
}

func TestGroupByCity_SameDestinationSharesGroup(t *testing.T) {
	dir := testDirectory()
	records := []Booking{
		FlightBooking{Meta: Meta{ID: "f1"}, DestinationCode: "sin"},
		FlightBooking{Meta: Meta{ID: "f2"}, DestinationCode: "SIN"},
	}

	groups := GroupByCity(records, dir)

	require.Len(t, groups, 1)
	assert.Equal(t, "SIN", groups[0].Code)
	assert.Len(t, groups[0].Flights, 2)
}

func TestGroupByCity_MixedKindsShareGroup(t *testing.T) {
	dir := testDirectory()
	records := []Booking{
		FlightBooking{Meta: Meta{ID: "f1"}, DestinationCode: "SIN"},
		HotelBooking{Meta: Meta{ID: "h1"}, City: "Singapore"},
		CarBooking{Meta: Meta{ID: "c1"}, Location: "Singapore"},
	}

	groups := GroupByCity(records, dir)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "SIN", g.Code)
	assert.Len(t, g.Flights, 1)
	assert.Len(t, g.Hotels, 1)
	assert.Len(t, g.Cars, 1)
}

func TestGroupByCity_FirstSeenOrder(t *testing.T) {
	dir := testDirectory()
	records := []Booking{
		FlightBooking{Meta: Meta{ID: "f1"}, DestinationCode: "BKK"},
		FlightBooking{Meta: Meta{ID: "f2"}, DestinationCode: "SIN"},
		FlightBooking{Meta: Meta{ID: "f3"}, DestinationCode: "BKK"},
		HotelBooking{Meta: Meta{ID: "h1"}, City: "Denpasar"},
	}

	groups := GroupByCity(records, dir)

	require.Len(t, groups, 3)
	assert.Equal(t, "BKK", groups[0].Code)
	assert.Equal(t, "SIN", groups[1].Code)
	assert.Equal(t, "DPS", groups[2].Code)

	// Within a group, input order survives.
	require.Len(t, groups[0].Flights, 2)
	assert.Equal(t, "f1", groups[0].Flights[0].ID)
	assert.Equal(t, "f3", groups[0].Flights[1].ID)
}

func TestGroupByCity_UnresolvableStillGrouped(t *testing.T) {
	dir := testDirectory()
	records := []Booking{
		HotelBooking{Meta: Meta{ID: "h1"}, City: "Nowhereville"},
		HotelBooking{Meta: Meta{ID: "h2"}},
	}

	groups := GroupByCity(records, dir)

	require.Len(t, groups, 2)
	assert.Equal(t, "NOWHEREVILLE", groups[0].Code)
	assert.Equal(t, "UNKNOWN", groups[1].Code)
	assert.Equal(t, "Unknown", groups[1].Country)
}

func TestGroupByCity_Idempotent(t *testing.T) {
	dir := testDirectory()
	records := []Booking{
		FlightBooking{Meta: Meta{ID: "f1"}, DestinationCode: "SIN", Quantity: 2},
		HotelBooking{Meta: Meta{ID: "h1"}, City: "Bangkok", RatePerNight: "$90/night"},
		CarBooking{Meta: Meta{ID: "c1"}, Location: "Denpasar"},
		HotelBooking{Meta: Meta{ID: "h2"}, City: "Nowhereville"},
	}

	first := GroupByCity(records, dir)
	second := GroupByCity(records, dir)

	assert.Equal(t, first, second)
}
