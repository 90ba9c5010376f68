// Package amadeus implements the flight-offer search provider adapter.
// It wraps the Amadeus Flight Offers Search API (OAuth2 client credentials,
// bearer-token search) and normalizes raw offers into domain flight records.
package amadeus

import "encoding/json"

// OffersResponse is the raw flight-offers search payload.
// A payload without a data sequence normalizes to zero records, not an error.
type OffersResponse struct {
	// Data is the sequence of priced offers
	Data []Offer `json:"data"`

	// Dictionaries holds the optional carrier code to display name mapping
	Dictionaries *Dictionaries `json:"dictionaries,omitempty"`

	// Errors is the provider's error list, set on failed searches
	Errors []APIError `json:"errors,omitempty"`
}

// Carriers returns the carrier lookup table, never nil.
func (r *OffersResponse) Carriers() map[string]string {
	if r == nil || r.Dictionaries == nil || r.Dictionaries.Carriers == nil {
		return map[string]string{}
	}
	return r.Dictionaries.Carriers
}

// Dictionaries holds the payload's reference data.
type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

// APIError is one provider-side error entry.
type APIError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// Offer is one priced itinerary option.
type Offer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       OfferPrice  `json:"price"`
}

// OfferPrice carries the offer's total price as a decimal string.
type OfferPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Itinerary is one directional journey composed of one or more segments.
type Itinerary struct {
	// Duration is the ISO-8601 total duration (e.g., "PT17H50M")
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flown leg between two airports.
type Segment struct {
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
}

// Endpoint is one end of a segment: an airport and a local timestamp.
type Endpoint struct {
	IataCode string `json:"iataCode"`

	// At is the local timestamp in "2006-01-02T15:04:05" form
	At string `json:"at"`
}

// tokenResponse is the OAuth2 token endpoint payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ParseOffersResponse decodes a raw search payload.
func ParseOffersResponse(data []byte) (*OffersResponse, error) {
	var resp OffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
