package directory

import "strings"

// Entry describes one airport/city in the static location table.
type Entry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Directory is a fixed lookup table mapping IATA codes to city/country
// metadata. It is passed explicitly to the planner so grouping can be
// tested against a small fake table.
type Directory struct {
	entries []Entry
	byCode  map[string]Entry
}

func New(entries []Entry) *Directory {
	d := &Directory{
		entries: entries,
		byCode:  make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		d.byCode[strings.ToUpper(e.Code)] = e
	}
	return d
}

// Lookup returns the entry for a code (case-insensitive). It never fails
// loudly — a missing code just reports ok=false.
func (d *Directory) Lookup(code string) (Entry, bool) {
	e, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return e, ok
}

// Search returns entries whose name, city or country contains q
// (case-insensitive). An empty or one-character query matches nothing.
func (d *Directory) Search(q string) []Entry {
	q = strings.ToLower(strings.TrimSpace(q))
	if len(q) < 2 {
		return nil
	}

	var out []Entry
	for _, e := range d.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.City), q) ||
			strings.Contains(strings.ToLower(e.Country), q) {
			out = append(out, e)
		}
	}
	return out
}

// All returns the entries in table order.
func (d *Directory) All() []Entry {
	return d.entries
}

// Static returns the built-in Southeast Asia location table.
func Static() *Directory {
	return New(staticEntries)
}

var staticEntries = []Entry{
	{ID: "1", Name: "Ngurah Rai International Airport", Code: "DPS", City: "Denpasar", Country: "Indonesia", Lat: -8.3405, Lon: 115.092},
	{ID: "2", Name: "Suvarnabhumi Airport", Code: "BKK", City: "Bangkok", Country: "Thailand", Lat: 13.7563, Lon: 100.5018},
	{ID: "3", Name: "Changi Airport", Code: "SIN", City: "Singapore", Country: "Singapore", Lat: 1.3521, Lon: 103.8198},
	{ID: "4", Name: "Kuala Lumpur International Airport", Code: "KUL", City: "Kuala Lumpur", Country: "Malaysia", Lat: 3.139, Lon: 101.6869},
	{ID: "5", Name: "Ninoy Aquino International Airport", Code: "MNL", City: "Manila", Country: "Philippines", Lat: 14.5995, Lon: 120.9842},
	{ID: "6", Name: "Tan Son Nhat International Airport", Code: "SGN", City: "Ho Chi Minh City", Country: "Vietnam", Lat: 10.8231, Lon: 106.6297},
	{ID: "7", Name: "Phnom Penh International Airport", Code: "PNH", City: "Phnom Penh", Country: "Cambodia", Lat: 11.5466, Lon: 104.8441},
	{ID: "8", Name: "Noi Bai International Airport", Code: "HAN", City: "Hanoi", Country: "Vietnam", Lat: 21.2214, Lon: 105.8067},
	{ID: "9", Name: "Yangon International Airport", Code: "RGN", City: "Yangon", Country: "Myanmar", Lat: 16.9074, Lon: 96.1335},
	{ID: "10", Name: "Wattay International Airport", Code: "VTE", City: "Vientiane", Country: "Laos", Lat: 17.9883, Lon: 102.5634},
	{ID: "11", Name: "Juanda International Airport", Code: "SUB", City: "Surabaya", Country: "Indonesia", Lat: -7.3797, Lon: 112.7875},
	{ID: "12", Name: "Sultan Hasanuddin International Airport", Code: "UPG", City: "Makassar", Country: "Indonesia", Lat: -5.0616, Lon: 119.5542},
	{ID: "13", Name: "Davao International Airport", Code: "DVO", City: "Davao", Country: "Philippines", Lat: 7.1256, Lon: 125.646},
	{ID: "14", Name: "Sam Ratulangi International Airport", Code: "MDC", City: "Manado", Country: "Indonesia", Lat: 1.5496, Lon: 124.9262},
	{ID: "15", Name: "Don Mueang International Airport", Code: "DMK", City: "Bangkok", Country: "Thailand", Lat: 13.9126, Lon: 100.6079},
}
