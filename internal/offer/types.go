package offer

import (
	"time"

	"farescout/pkg/flighttime"
)

type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByDuration SortKey = "duration"
	SortByStops    SortKey = "stops"
)

// StopBucket classifies an offer by its outbound stop count. Every offer
// falls into exactly one bucket.
type StopBucket int

const (
	BucketDirect StopBucket = iota
	BucketOneStop
	BucketTwoPlusStops
)

type LocationTime struct {
	Airport string    `json:"airport"`
	At      time.Time `json:"at"`
}

type DurationInfo struct {
	Minutes   int    `json:"minutes"`
	Formatted string `json:"formatted"`
}

type Segment struct {
	Departure   LocationTime `json:"departure"`
	Arrival     LocationTime `json:"arrival"`
	CarrierCode string       `json:"carrier_code"`
	Number      string       `json:"number"`
	Duration    DurationInfo `json:"duration"`
}

// Itinerary is one direction of travel. Stop count is segments minus one.
type Itinerary struct {
	Duration DurationInfo `json:"duration"`
	Segments []Segment    `json:"segments"`
}

func (it Itinerary) Stops() int {
	if len(it.Segments) == 0 {
		return 0
	}
	return len(it.Segments) - 1
}

// DepartureMinutes is the time of day the itinerary leaves, in minutes since
// local midnight.
func (it Itinerary) DepartureMinutes() int {
	if len(it.Segments) == 0 {
		return 0
	}
	return flighttime.MinutesSinceMidnight(it.Segments[0].Departure.At)
}

// Offer is one priced, bookable itinerary option from the shopping API.
// Itineraries[0] is always the outbound direction; a second entry, when
// present, is the return.
type Offer struct {
	ID             string      `json:"id"`
	Itineraries    []Itinerary `json:"itineraries"`
	TotalPrice     float64     `json:"total_price"`
	Currency       string      `json:"currency"`
	RemainingSeats int         `json:"remaining_seats"`
	PrimaryCarrier string      `json:"primary_carrier"`
}

func (o Offer) Outbound() Itinerary {
	if len(o.Itineraries) == 0 {
		return Itinerary{}
	}
	return o.Itineraries[0]
}

func (o Offer) Return() (Itinerary, bool) {
	if len(o.Itineraries) < 2 {
		return Itinerary{}, false
	}
	return o.Itineraries[1], true
}

// ConstraintSet is the caller-held record of the current facet limits. A new
// search replaces it wholesale together with the batch.
type ConstraintSet struct {
	Direct       bool `json:"direct"`
	OneStop      bool `json:"one_stop"`
	TwoPlusStops bool `json:"two_plus_stops"`

	MaxPrice                    float64 `json:"max_price"`
	MaxDurationMinutes          int     `json:"max_duration_minutes"`
	MaxOutboundDepartureMinutes int     `json:"max_outbound_departure_minutes"`
	MaxReturnDepartureMinutes   int     `json:"max_return_departure_minutes"`

	// Carriers maps carrier code to inclusion. An absent code counts as
	// included; only an explicit false excludes.
	Carriers map[string]bool `json:"carriers"`

	RequireCabinBag   bool `json:"require_cabin_bag"`
	RequireCheckedBag bool `json:"require_checked_bag"`
}

// CarrierIncluded is the single lookup enforcing the fail-open carrier
// semantics: absent key means included.
func (c ConstraintSet) CarrierIncluded(code string) bool {
	included, ok := c.Carriers[code]
	return !ok || included
}

// CarrierOption is one row of the carrier facet: the cheapest offer flown by
// that carrier, for "from $X" affordances.
type CarrierOption struct {
	Code            string  `json:"code"`
	MinPrice        float64 `json:"min_price"`
	MinPriceDisplay string  `json:"min_price_display"`
}

// FacetRanges is the legal range of every adjustable constraint, derived
// from a batch.
type FacetRanges struct {
	PriceMin    float64         `json:"price_min"`
	PriceMax    float64         `json:"price_max"`
	DurationMin int             `json:"duration_min"`
	DurationMax int             `json:"duration_max"`
	Carriers    []CarrierOption `json:"carriers"`
}

// BucketMinimums carries the minimum total price per stop bucket. A nil
// entry means the bucket has no offers, which the UI must render differently
// from a zero price.
type BucketMinimums struct {
	Direct       *float64 `json:"direct"`
	OneStop      *float64 `json:"one_stop"`
	TwoPlusStops *float64 `json:"two_plus_stops"`
}

// Headline holds the sort-mode badge prices, always computed over the full
// batch regardless of active constraints.
type Headline struct {
	CheapestPrice float64 `json:"cheapest_price"`
	FastestPrice  float64 `json:"fastest_price"`
}

// SearchQuery is the contract with the flight-offer fetch collaborator.
type SearchQuery struct {
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	CabinClass    string `json:"cabin_class,omitempty"`
	DirectOnly    bool   `json:"direct_only,omitempty"`
	Currency      string `json:"currency,omitempty"`
	MaxResults    int    `json:"max_results,omitempty"`
}

type FilterRequest struct {
	SearchQuery
	Constraints *ConstraintSet `json:"constraints,omitempty"`
	SortBy      SortKey        `json:"sort_by,omitempty"`
}

type Metadata struct {
	BatchID      string `json:"batch_id"`
	TotalResults int    `json:"total_results"`
	SearchTimeMs int64  `json:"search_time_ms"`
	CacheHit     bool   `json:"cache_hit"`
	CacheKey     string `json:"cache_key,omitempty"`
}

// SearchResponse is what the result-list UI renders from: the offers plus
// everything needed to draw the facet controls.
type SearchResponse struct {
	Metadata           Metadata       `json:"metadata"`
	Facets             FacetRanges    `json:"facets"`
	DefaultConstraints ConstraintSet  `json:"default_constraints"`
	BucketMinimums     BucketMinimums `json:"bucket_minimums"`
	Headline           *Headline      `json:"headline,omitempty"`
	Offers             []Offer        `json:"offers"`
}
