package shopclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"farescout/internal/offer"
	"farescout/pkg/logger"
)

// Client fetches priced flight offers from the upstream shopping API. It
// implements offer.OfferClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenSource
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL string, tokens *TokenSource, logger logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger,
	}
}

// SearchOffers runs one upstream shopping search and maps the wire payload
// to the domain model. Failure taxonomy: *offer.FetchError for auth, network
// and upstream rejections; offer.ErrNoResults when the search matched
// nothing.
func (c *Client) SearchOffers(ctx context.Context, q offer.SearchQuery) ([]offer.Offer, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &offer.FetchError{Kind: offer.FetchUpstreamAuth, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("shopclient: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &offer.FetchError{Kind: offer.FetchNetwork, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.tokens.Invalidate()
		return nil, &offer.FetchError{Kind: offer.FetchUpstreamAuth, StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		var upstreamErr upstreamErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err == nil && len(upstreamErr.Errors) > 0 {
			c.logger.Warn("upstream rejected search",
				logger.Field{Key: "status", Value: resp.StatusCode},
				logger.Field{Key: "detail", Value: upstreamErr.Errors[0].Detail},
			)
		}
		return nil, &offer.FetchError{Kind: offer.FetchUpstreamRejected, StatusCode: resp.StatusCode}
	}

	var apiResp flightOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("shopclient: failed to decode response: %w", err)
	}

	if len(apiResp.Data) == 0 {
		return nil, offer.ErrNoResults
	}

	return mapOffers(apiResp), nil
}

func (c *Client) searchURL(q offer.SearchQuery) string {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(q.Adults))
	if q.CabinClass != "" {
		params.Set("travelClass", q.CabinClass)
	}
	if q.DirectOnly {
		params.Set("nonStop", "true")
	}
	if q.Currency != "" {
		params.Set("currencyCode", q.Currency)
	}
	params.Set("max", strconv.Itoa(q.MaxResults))

	return c.baseURL + "/v2/shopping/flight-offers?" + params.Encode()
}
