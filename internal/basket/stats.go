package basket

import (
	"math"

	"tavolo/internal/item"
)

// Price histogram bucket labels, in display order.
var PriceBuckets = []string{"0-10", "11-20", "21-30", "31-40", "41+"}

// Summary is the derived aggregate view of a basket snapshot: price extremes
// and mean, a price histogram, a rating histogram (rounded to the nearest
// star) and review-count totals per category.
type Summary struct {
	MostExpensive  float64        `json:"mostExpensive"`
	LeastExpensive float64        `json:"leastExpensive"`
	AveragePrice   float64        `json:"averagePrice"`
	PriceRanges    map[string]int `json:"priceRanges"`
	RatingCounts   map[int]int    `json:"ratingCounts"`
	CategoryReviews map[string]int `json:"categoryReviews"`
	TotalReviews   int            `json:"totalReviews"`
}

// Summarize recomputes every aggregate from scratch; it runs on each snapshot
// change, so it has no incremental state to get out of sync.
func Summarize(items []item.Item) Summary {
	s := Summary{
		PriceRanges:     make(map[string]int, len(PriceBuckets)),
		RatingCounts:    make(map[int]int, 5),
		CategoryReviews: make(map[string]int),
	}
	for _, b := range PriceBuckets {
		s.PriceRanges[b] = 0
	}
	for star := 1; star <= 5; star++ {
		s.RatingCounts[star] = 0
	}
	if len(items) == 0 {
		return s
	}

	s.MostExpensive = items[0].Price
	s.LeastExpensive = items[0].Price

	var sum float64
	for _, it := range items {
		if it.Price > s.MostExpensive {
			s.MostExpensive = it.Price
		}
		if it.Price < s.LeastExpensive {
			s.LeastExpensive = it.Price
		}
		sum += it.Price

		s.PriceRanges[priceBucket(it.Price)]++

		star := int(math.Round(it.Rating))
		if star < 1 {
			star = 1
		}
		if star > 5 {
			star = 5
		}
		s.RatingCounts[star]++

		s.CategoryReviews[it.Category] += it.Reviews
		s.TotalReviews += it.Reviews
	}
	s.AveragePrice = sum / float64(len(items))
	return s
}

func priceBucket(price float64) string {
	switch {
	case price <= 10:
		return "0-10"
	case price <= 20:
		return "11-20"
	case price <= 30:
		return "21-30"
	case price <= 40:
		return "31-40"
	default:
		return "41+"
	}
}
