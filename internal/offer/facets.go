package offer

import (
	"math"
	"sort"

	"farescout/pkg/currency"
)

// Defaults used when a batch is empty and there is no data to derive ranges
// from.
const (
	fallbackMaxPrice    = 9999
	fallbackMaxDuration = 1440
	lastMinuteOfDay     = 1439
)

func bucketOf(o Offer) StopBucket {
	switch stops := o.Outbound().Stops(); {
	case stops == 0:
		return BucketDirect
	case stops == 1:
		return BucketOneStop
	default:
		return BucketTwoPlusStops
	}
}

// DeriveDefaultRanges computes the legal range of every adjustable
// constraint from a batch: price bounds, outbound-duration bounds, and the
// carrier facet ordered cheapest-first. Carrier ordering is load-bearing for
// the UI, so ties are broken by code to keep it deterministic.
func DeriveDefaultRanges(batch []Offer) FacetRanges {
	if len(batch) == 0 {
		return FacetRanges{
			PriceMax:    fallbackMaxPrice,
			DurationMax: fallbackMaxDuration,
		}
	}

	minPrice, maxPrice := batch[0].TotalPrice, batch[0].TotalPrice
	minDur, maxDur := batch[0].Outbound().Duration.Minutes, batch[0].Outbound().Duration.Minutes
	carrierMin := make(map[string]float64)

	for _, o := range batch {
		if o.TotalPrice < minPrice {
			minPrice = o.TotalPrice
		}
		if o.TotalPrice > maxPrice {
			maxPrice = o.TotalPrice
		}

		dur := o.Outbound().Duration.Minutes
		if dur < minDur {
			minDur = dur
		}
		if dur > maxDur {
			maxDur = dur
		}

		if cur, ok := carrierMin[o.PrimaryCarrier]; !ok || o.TotalPrice < cur {
			carrierMin[o.PrimaryCarrier] = o.TotalPrice
		}
	}

	display := batch[0].Currency
	carriers := make([]CarrierOption, 0, len(carrierMin))
	for code, price := range carrierMin {
		carriers = append(carriers, CarrierOption{
			Code:            code,
			MinPrice:        price,
			MinPriceDisplay: currency.Format(price, display),
		})
	}
	sort.Slice(carriers, func(i, j int) bool {
		if carriers[i].MinPrice != carriers[j].MinPrice {
			return carriers[i].MinPrice < carriers[j].MinPrice
		}
		return carriers[i].Code < carriers[j].Code
	})

	return FacetRanges{
		PriceMin:    math.Floor(minPrice),
		PriceMax:    math.Ceil(maxPrice),
		DurationMin: minDur,
		DurationMax: maxDur,
		Carriers:    carriers,
	}
}

// DefaultConstraints seeds a fresh ConstraintSet from derived ranges. The
// defaults always cover the full observed range, so a new batch is never
// silently filtered out on arrival.
func (r FacetRanges) DefaultConstraints() ConstraintSet {
	carriers := make(map[string]bool, len(r.Carriers))
	for _, c := range r.Carriers {
		carriers[c.Code] = true
	}

	return ConstraintSet{
		Direct:                      true,
		OneStop:                     true,
		TwoPlusStops:                true,
		MaxPrice:                    r.PriceMax,
		MaxDurationMinutes:          r.DurationMax,
		MaxOutboundDepartureMinutes: lastMinuteOfDay,
		MaxReturnDepartureMinutes:   lastMinuteOfDay,
		Carriers:                    carriers,
	}
}

// StopBucketMinimums reports the cheapest total price per outbound stop
// bucket. A bucket with no offers stays nil so callers can tell "no such
// offers" apart from "free".
func StopBucketMinimums(batch []Offer) BucketMinimums {
	var mins BucketMinimums

	for _, o := range batch {
		var slot **float64
		switch bucketOf(o) {
		case BucketDirect:
			slot = &mins.Direct
		case BucketOneStop:
			slot = &mins.OneStop
		default:
			slot = &mins.TwoPlusStops
		}

		if *slot == nil || o.TotalPrice < **slot {
			price := o.TotalPrice
			*slot = &price
		}
	}

	return mins
}

// HeadlinePrices computes the sort-badge prices over the full batch: the
// cheapest total price, and the price of the offer with the shortest
// outbound. Independent of the active sort key and constraints; recomputed
// only when the batch changes. Reports false for an empty batch.
func HeadlinePrices(batch []Offer) (Headline, bool) {
	if len(batch) == 0 {
		return Headline{}, false
	}

	cheapest := batch[0].TotalPrice
	fastestPrice := batch[0].TotalPrice
	fastestDur := batch[0].Outbound().Duration.Minutes

	for _, o := range batch[1:] {
		if o.TotalPrice < cheapest {
			cheapest = o.TotalPrice
		}
		if dur := o.Outbound().Duration.Minutes; dur < fastestDur {
			fastestDur = dur
			fastestPrice = o.TotalPrice
		}
	}

	return Headline{CheapestPrice: cheapest, FastestPrice: fastestPrice}, true
}
