package planner

import "wayplan/directory"

// CityGroup aggregates every plan record that resolves to one location
// key. Groups are a view computed per call, never stored.
type CityGroup struct {
	Code    string          `json:"code"`
	City    string          `json:"city"`
	Country string          `json:"country"`
	Flights []FlightBooking `json:"flights"`
	Hotels  []HotelBooking  `json:"hotels"`
	Cars    []CarBooking    `json:"cars"`
}

// GroupByCity partitions records into CityGroups keyed by their normalized
// location. Groups appear in first-seen order and each sub-list preserves
// input order, so rendering is stable across identical snapshots. Every
// record lands in exactly one group — unresolvable locations collect under
// the "UNKNOWN" fallback instead of being dropped.
func GroupByCity(records []Booking, dir *directory.Directory) []CityGroup {
	if len(records) == 0 {
		return []CityGroup{}
	}

	groups := make([]CityGroup, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		if rec == nil {
			continue
		}
		res := Normalize(rec, dir)

		i, ok := index[res.Key]
		if !ok {
			i = len(groups)
			index[res.Key] = i
			groups = append(groups, CityGroup{
				Code:    res.Key,
				City:    res.City,
				Country: res.Country,
				Flights: []FlightBooking{},
				Hotels:  []HotelBooking{},
				Cars:    []CarBooking{},
			})
		}

		switch r := rec.(type) {
		case FlightBooking:
			groups[i].Flights = append(groups[i].Flights, r)
		case HotelBooking:
			groups[i].Hotels = append(groups[i].Hotels, r)
		case CarBooking:
			groups[i].Cars = append(groups[i].Cars, r)
		}
	}

	return groups
}

// Size reports how many records the group holds across all sub-lists.
func (g CityGroup) Size() int {
	return len(g.Flights) + len(g.Hotels) + len(g.Cars)
}
