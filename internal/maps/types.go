package maps

// LookupRequest represents the query parameters from the frontend.
type LookupRequest struct {
	Query  string `form:"q" binding:"required,min=2"`
	Locale string `form:"locale"`
}

// PlaceSuggestion is a town or city a freelancer can serve, returned to the
// Location field of a local or hybrid listing.
type PlaceSuggestion struct {
	Label   string `json:"label"`
	City    string `json:"city"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country"`
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
}

type nominatimAddress struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	Hamlet       string `json:"hamlet"`
	State        string `json:"state"`
	Province     string `json:"province"`
	CountryCode  string `json:"country_code"`
}

// nominatimResponse mirrors the relevant parts of the OSM search payload.
type nominatimResponse struct {
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
}
