package basket

import (
	"math"
	"testing"

	"tavolo/internal/item"
)

func TestSummarize_EmptyBasket(t *testing.T) {
	s := Summarize(nil)

	if s.MostExpensive != 0 || s.LeastExpensive != 0 || s.AveragePrice != 0 {
		t.Errorf("empty basket should have zero price aggregates: %+v", s)
	}
	if len(s.PriceRanges) != 5 {
		t.Errorf("expected all 5 price buckets initialized, got %v", s.PriceRanges)
	}
	for star := 1; star <= 5; star++ {
		if _, ok := s.RatingCounts[star]; !ok {
			t.Errorf("rating bucket %d missing", star)
		}
	}
}

func TestSummarize_PriceAggregates(t *testing.T) {
	s := Summarize([]item.Item{
		{Price: 8.99, Rating: 4.5, Category: "Breakfast", Reviews: 10},
		{Price: 24.99, Rating: 4.7, Category: "Dinner", Reviews: 20},
		{Price: 29.99, Rating: 2.2, Category: "Dinner", Reviews: 5},
	})

	if s.MostExpensive != 29.99 || s.LeastExpensive != 8.99 {
		t.Errorf("price extremes wrong: %+v", s)
	}
	want := (8.99 + 24.99 + 29.99) / 3
	if math.Abs(s.AveragePrice-want) > 1e-9 {
		t.Errorf("expected mean %.4f, got %.4f", want, s.AveragePrice)
	}
	if s.PriceRanges["0-10"] != 1 || s.PriceRanges["21-30"] != 2 {
		t.Errorf("price histogram wrong: %v", s.PriceRanges)
	}
}

func TestSummarize_RatingRoundsToNearestStar(t *testing.T) {
	s := Summarize([]item.Item{
		{Rating: 4.5, Category: "a"}, // rounds up to 5
		{Rating: 4.4, Category: "a"}, // rounds down to 4
		{Rating: 1.2, Category: "a"},
	})

	if s.RatingCounts[5] != 1 || s.RatingCounts[4] != 1 || s.RatingCounts[1] != 1 {
		t.Errorf("rating histogram wrong: %v", s.RatingCounts)
	}
}

func TestSummarize_CategoryReviewTotals(t *testing.T) {
	s := Summarize([]item.Item{
		{Category: "Breakfast", Reviews: 10, Rating: 4},
		{Category: "Breakfast", Reviews: 5, Rating: 4},
		{Category: "Dessert", Reviews: 7, Rating: 4},
	})

	if s.CategoryReviews["Breakfast"] != 15 || s.CategoryReviews["Dessert"] != 7 {
		t.Errorf("category review totals wrong: %v", s.CategoryReviews)
	}
	if s.TotalReviews != 22 {
		t.Errorf("expected 22 total reviews, got %d", s.TotalReviews)
	}
}
