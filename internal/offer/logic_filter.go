package offer

// Filter returns the offers satisfying every active constraint, preserving
// batch order. Pure: the same (batch, constraints) pair always yields the
// same subset, and the input slice is never mutated.
func Filter(batch []Offer, c ConstraintSet) []Offer {
	filtered := make([]Offer, 0, len(batch))

	for _, o := range batch {
		if matches(o, c) {
			filtered = append(filtered, o)
		}
	}

	return filtered
}

// matches returns true only if ALL active constraints pass
func matches(o Offer, c ConstraintSet) bool {
	switch bucketOf(o) {
	case BucketDirect:
		if !c.Direct {
			return false
		}
	case BucketOneStop:
		if !c.OneStop {
			return false
		}
	default:
		if !c.TwoPlusStops {
			return false
		}
	}

	if o.TotalPrice > c.MaxPrice {
		return false
	}

	out := o.Outbound()
	if out.Duration.Minutes > c.MaxDurationMinutes {
		return false
	}

	if out.DepartureMinutes() > c.MaxOutboundDepartureMinutes {
		return false
	}

	// MaxReturnDepartureMinutes is collected from the UI but deliberately not
	// applied here: the production behavior never filtered the return leg.
	// Do not add a return-leg predicate without a product decision.

	// RequireCabinBag / RequireCheckedBag: the upstream offer payload carries
	// no baggage-included flag yet, so these cannot be evaluated. They are
	// kept on the ConstraintSet for the day the payload grows the field.

	if !c.CarrierIncluded(o.PrimaryCarrier) {
		return false
	}

	return true
}

// FilterAndSort is the projection the result list renders on every
// constraint change.
func FilterAndSort(batch []Offer, c ConstraintSet, key SortKey) []Offer {
	return SortOffers(Filter(batch, c), key)
}
