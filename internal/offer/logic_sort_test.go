package offer

import (
	"reflect"
	"testing"
)

func TestSortOffers_ByPrice(t *testing.T) {
	got := ids(SortOffers(exampleBatch(), SortByPrice))
	if !reflect.DeepEqual(got, []string{"B", "A", "C"}) {
		t.Errorf("price sort = %v, want [B A C]", got)
	}
}

func TestSortOffers_ByDuration(t *testing.T) {
	got := ids(SortOffers(exampleBatch(), SortByDuration))
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("duration sort = %v, want [A B C]", got)
	}
}

func TestSortOffers_ByStops(t *testing.T) {
	got := ids(SortOffers(exampleBatch(), SortByStops))
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("stops sort = %v, want [A B C]", got)
	}
}

// Equal-price offers must keep their batch order: upstream ranking survives
// ties.
func TestSortOffers_StableOnTies(t *testing.T) {
	batch := []Offer{
		testOffer("X", 100, 1, "FR", 200, 9, 0),
		testOffer("Y", 100, 0, "U2", 150, 10, 0),
		testOffer("Z", 50, 2, "W6", 400, 11, 0),
	}

	got := ids(SortOffers(batch, SortByPrice))
	if !reflect.DeepEqual(got, []string{"Z", "X", "Y"}) {
		t.Errorf("stable price sort = %v, want [Z X Y]", got)
	}
}

func TestSortOffers_UnknownKeyKeepsOrder(t *testing.T) {
	batch := exampleBatch()
	got := ids(SortOffers(batch, SortKey("banana")))
	if !reflect.DeepEqual(got, ids(batch)) {
		t.Errorf("unknown key reordered: %v", got)
	}
}

func TestSortOffers_DoesNotMutateInput(t *testing.T) {
	batch := exampleBatch()
	before := ids(batch)

	SortOffers(batch, SortByPrice)

	if !reflect.DeepEqual(ids(batch), before) {
		t.Error("SortOffers mutated its input")
	}
}

func TestValidSortKey(t *testing.T) {
	for _, key := range []SortKey{SortByPrice, SortByDuration, SortByStops} {
		if !ValidSortKey(key) {
			t.Errorf("expected %q to be valid", key)
		}
	}
	if ValidSortKey("best_value") {
		t.Error("unexpected valid key")
	}
}
