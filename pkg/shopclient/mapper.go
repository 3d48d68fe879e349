package shopclient

import (
	"strconv"

	"farescout/internal/offer"
	"farescout/pkg/flighttime"
)

// mapOffers converts the wire payload to domain offers. Records with a
// missing or non-positive price are dropped rather than failing the batch.
func mapOffers(resp flightOffersResponse) []offer.Offer {
	mapped := make([]offer.Offer, 0, len(resp.Data))

	for _, wo := range resp.Data {
		if len(wo.Itineraries) == 0 {
			continue
		}

		price, err := strconv.ParseFloat(wo.Price.GrandTotal, 64)
		if err != nil || price <= 0 {
			continue
		}

		itineraries := make([]offer.Itinerary, 0, len(wo.Itineraries))
		for _, wi := range wo.Itineraries {
			itineraries = append(itineraries, mapItinerary(wi))
		}

		mapped = append(mapped, offer.Offer{
			ID:             wo.ID,
			Itineraries:    itineraries,
			TotalPrice:     price,
			Currency:       wo.Price.Currency,
			RemainingSeats: wo.NumberOfBookableSeats,
			PrimaryCarrier: primaryCarrier(wo),
		})
	}

	return mapped
}

func mapItinerary(wi wireItinerary) offer.Itinerary {
	segments := make([]offer.Segment, 0, len(wi.Segments))
	for _, ws := range wi.Segments {
		segments = append(segments, offer.Segment{
			Departure: offer.LocationTime{
				Airport: ws.Departure.IataCode,
				At:      flighttime.ParseLocalTimestamp(ws.Departure.At),
			},
			Arrival: offer.LocationTime{
				Airport: ws.Arrival.IataCode,
				At:      flighttime.ParseLocalTimestamp(ws.Arrival.At),
			},
			CarrierCode: ws.CarrierCode,
			Number:      ws.CarrierCode + ws.Number,
			Duration: offer.DurationInfo{
				Minutes:   flighttime.ParseISOMinutes(ws.Duration),
				Formatted: flighttime.FormatISODuration(ws.Duration),
			},
		})
	}

	return offer.Itinerary{
		Duration: offer.DurationInfo{
			Minutes:   flighttime.ParseISOMinutes(wi.Duration),
			Formatted: flighttime.FormatISODuration(wi.Duration),
		},
		Segments: segments,
	}
}

// primaryCarrier is the carrier code the offer is filtered and displayed
// under: the validating airline when present, else the first flown segment's
// carrier.
func primaryCarrier(wo flightOffer) string {
	if len(wo.ValidatingAirlineCodes) > 0 {
		return wo.ValidatingAirlineCodes[0]
	}
	if len(wo.Itineraries) > 0 && len(wo.Itineraries[0].Segments) > 0 {
		return wo.Itineraries[0].Segments[0].CarrierCode
	}
	return ""
}
