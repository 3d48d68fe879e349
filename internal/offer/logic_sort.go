package offer

import "sort"

// SortOffers orders offers ascending by the given key, on a copy of the
// input. Stable so equal-key offers keep the batch's own order, which may
// carry upstream relevance ranking. An unknown key leaves the order as-is;
// the service layer logs that case.
func SortOffers(offers []Offer, key SortKey) []Offer {
	sorted := make([]Offer, len(offers))
	copy(sorted, offers)

	if len(sorted) <= 1 {
		return sorted
	}

	switch key {
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalPrice < sorted[j].TotalPrice
		})
	case SortByDuration:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Outbound().Duration.Minutes < sorted[j].Outbound().Duration.Minutes
		})
	case SortByStops:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Outbound().Stops() < sorted[j].Outbound().Stops()
		})
	}

	return sorted
}

// ValidSortKey reports whether key names a supported ordering.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortByPrice, SortByDuration, SortByStops:
		return true
	}
	return false
}
