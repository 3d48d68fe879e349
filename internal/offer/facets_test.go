package offer

import (
	"testing"
	"time"
)

// testOffer builds an offer with stops+1 outbound segments departing at the
// given local time of day.
func testOffer(id string, price float64, stops int, carrier string, durMinutes, depHour, depMinute int) Offer {
	depart := time.Date(2025, 6, 10, depHour, depMinute, 0, 0, time.UTC)
	segments := make([]Segment, stops+1)
	for i := range segments {
		segments[i] = Segment{
			Departure:   LocationTime{Airport: "AAA", At: depart.Add(time.Duration(i) * 3 * time.Hour)},
			Arrival:     LocationTime{Airport: "BBB", At: depart.Add(time.Duration(i)*3*time.Hour + 2*time.Hour)},
			CarrierCode: carrier,
		}
	}

	return Offer{
		ID: id,
		Itineraries: []Itinerary{{
			Duration: DurationInfo{Minutes: durMinutes},
			Segments: segments,
		}},
		TotalPrice:     price,
		Currency:       "EUR",
		RemainingSeats: 4,
		PrimaryCarrier: carrier,
	}
}

// exampleBatch mirrors a small real-world result set: a direct flight, a
// cheaper one-stop, and an expensive two-stop.
func exampleBatch() []Offer {
	return []Offer{
		testOffer("A", 120, 0, "FR", 130, 8, 0),
		testOffer("B", 90, 1, "U2", 310, 14, 30),
		testOffer("C", 300, 2, "FR", 540, 22, 15),
	}
}

func TestDeriveDefaultRanges(t *testing.T) {
	ranges := DeriveDefaultRanges(exampleBatch())

	if ranges.PriceMin != 90 || ranges.PriceMax != 300 {
		t.Errorf("price range = [%v, %v], want [90, 300]", ranges.PriceMin, ranges.PriceMax)
	}
	if ranges.DurationMin != 130 || ranges.DurationMax != 540 {
		t.Errorf("duration range = [%d, %d], want [130, 540]", ranges.DurationMin, ranges.DurationMax)
	}

	if len(ranges.Carriers) != 2 {
		t.Fatalf("expected 2 carrier options, got %d", len(ranges.Carriers))
	}
	// Cheapest carrier first.
	if ranges.Carriers[0].Code != "U2" || ranges.Carriers[0].MinPrice != 90 {
		t.Errorf("first carrier option = %+v, want U2 at 90", ranges.Carriers[0])
	}
	if ranges.Carriers[1].Code != "FR" || ranges.Carriers[1].MinPrice != 120 {
		t.Errorf("second carrier option = %+v, want FR at 120", ranges.Carriers[1])
	}
	if ranges.Carriers[0].MinPriceDisplay != "€90" {
		t.Errorf("display = %q, want €90", ranges.Carriers[0].MinPriceDisplay)
	}
}

func TestDeriveDefaultRanges_FractionalPrices(t *testing.T) {
	batch := []Offer{
		testOffer("A", 89.45, 0, "FR", 100, 8, 0),
		testOffer("B", 120.10, 0, "FR", 100, 8, 0),
	}

	ranges := DeriveDefaultRanges(batch)
	if ranges.PriceMin != 89 {
		t.Errorf("PriceMin = %v, want floor 89", ranges.PriceMin)
	}
	if ranges.PriceMax != 121 {
		t.Errorf("PriceMax = %v, want ceil 121", ranges.PriceMax)
	}
}

func TestDeriveDefaultRanges_CarrierTieBrokenByCode(t *testing.T) {
	batch := []Offer{
		testOffer("A", 100, 0, "LH", 100, 8, 0),
		testOffer("B", 100, 0, "BA", 100, 8, 0),
	}

	ranges := DeriveDefaultRanges(batch)
	if ranges.Carriers[0].Code != "BA" || ranges.Carriers[1].Code != "LH" {
		t.Errorf("tie not broken by code: %+v", ranges.Carriers)
	}
}

func TestDeriveDefaultRanges_EmptyBatch(t *testing.T) {
	ranges := DeriveDefaultRanges(nil)

	if ranges.PriceMin != 0 || ranges.PriceMax != 9999 {
		t.Errorf("empty-batch price range = [%v, %v], want [0, 9999]", ranges.PriceMin, ranges.PriceMax)
	}
	if ranges.DurationMin != 0 || ranges.DurationMax != 1440 {
		t.Errorf("empty-batch duration range = [%d, %d], want [0, 1440]", ranges.DurationMin, ranges.DurationMax)
	}
	if len(ranges.Carriers) != 0 {
		t.Errorf("expected no carrier options, got %d", len(ranges.Carriers))
	}
}

// Default constraints derived from a batch must never exclude any offer of
// that batch.
func TestDefaultConstraints_CoverFullBatch(t *testing.T) {
	batch := exampleBatch()
	defaults := DeriveDefaultRanges(batch).DefaultConstraints()

	filtered := Filter(batch, defaults)
	if len(filtered) != len(batch) {
		t.Fatalf("default constraints excluded offers: got %d of %d", len(filtered), len(batch))
	}
	for i := range batch {
		if filtered[i].ID != batch[i].ID {
			t.Errorf("order changed at %d: %s != %s", i, filtered[i].ID, batch[i].ID)
		}
	}
}

func TestStopBucketMinimums(t *testing.T) {
	mins := StopBucketMinimums(exampleBatch())

	if mins.Direct == nil || *mins.Direct != 120 {
		t.Errorf("direct minimum = %v, want 120", mins.Direct)
	}
	if mins.OneStop == nil || *mins.OneStop != 90 {
		t.Errorf("one-stop minimum = %v, want 90", mins.OneStop)
	}
	if mins.TwoPlusStops == nil || *mins.TwoPlusStops != 300 {
		t.Errorf("two-plus minimum = %v, want 300", mins.TwoPlusStops)
	}
}

func TestStopBucketMinimums_EmptyBucketIsNil(t *testing.T) {
	batch := []Offer{
		testOffer("A", 120, 0, "FR", 130, 8, 0),
	}

	mins := StopBucketMinimums(batch)
	if mins.Direct == nil {
		t.Error("direct bucket should be populated")
	}
	if mins.OneStop != nil || mins.TwoPlusStops != nil {
		t.Error("empty buckets must stay nil, not zero")
	}
}

// Buckets partition the batch: each offer lands in exactly one, and the
// reported minimums agree with a brute-force scan per bucket.
func TestStopBucketMinimums_MatchBruteForce(t *testing.T) {
	batch := []Offer{
		testOffer("A", 120, 0, "FR", 130, 8, 0),
		testOffer("B", 90, 1, "U2", 310, 14, 30),
		testOffer("C", 300, 2, "FR", 540, 22, 15),
		testOffer("D", 75, 0, "W6", 140, 6, 45),
		testOffer("E", 410, 3, "LH", 700, 11, 0),
		testOffer("F", 88, 1, "FR", 300, 19, 5),
	}

	counts := 0
	brute := map[StopBucket]float64{}
	for _, o := range batch {
		b := bucketOf(o)
		counts++
		if cur, ok := brute[b]; !ok || o.TotalPrice < cur {
			brute[b] = o.TotalPrice
		}
	}
	if counts != len(batch) {
		t.Fatalf("classification is not a partition")
	}

	mins := StopBucketMinimums(batch)
	if *mins.Direct != brute[BucketDirect] {
		t.Errorf("direct = %v, brute force = %v", *mins.Direct, brute[BucketDirect])
	}
	if *mins.OneStop != brute[BucketOneStop] {
		t.Errorf("oneStop = %v, brute force = %v", *mins.OneStop, brute[BucketOneStop])
	}
	if *mins.TwoPlusStops != brute[BucketTwoPlusStops] {
		t.Errorf("twoPlus = %v, brute force = %v", *mins.TwoPlusStops, brute[BucketTwoPlusStops])
	}
}

func TestHeadlinePrices(t *testing.T) {
	headline, ok := HeadlinePrices(exampleBatch())
	if !ok {
		t.Fatal("expected headline for non-empty batch")
	}

	if headline.CheapestPrice != 90 {
		t.Errorf("cheapest = %v, want 90", headline.CheapestPrice)
	}
	// The fastest outbound is offer A (130m), so the fastest badge shows A's
	// price, not the globally cheapest.
	if headline.FastestPrice != 120 {
		t.Errorf("fastest = %v, want 120", headline.FastestPrice)
	}
}

func TestHeadlinePrices_EmptyBatch(t *testing.T) {
	if _, ok := HeadlinePrices(nil); ok {
		t.Error("expected no headline for empty batch")
	}
}
