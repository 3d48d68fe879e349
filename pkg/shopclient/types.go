package shopclient

// Wire shapes of the upstream flight-offers shopping API.

type flightOffersResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	ID                     string          `json:"id"`
	NumberOfBookableSeats  int             `json:"numberOfBookableSeats"`
	Itineraries            []wireItinerary `json:"itineraries"`
	Price                  wirePrice       `json:"price"`
	ValidatingAirlineCodes []string        `json:"validatingAirlineCodes"`
}

type wirePrice struct {
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

type wireItinerary struct {
	Duration string        `json:"duration"`
	Segments []wireSegment `json:"segments"`
}

type wireSegment struct {
	Departure   wirePoint `json:"departure"`
	Arrival     wirePoint `json:"arrival"`
	CarrierCode string    `json:"carrierCode"`
	Number      string    `json:"number"`
	Duration    string    `json:"duration"`
}

type wirePoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type upstreamErrorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
