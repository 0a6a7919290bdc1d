package item

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Price segment values. A segment classifies items relative to the mean price
// of the set the query runs against.
const (
	SegmentHighest = "highest"
	SegmentAverage = "average"
	SegmentLowest  = "lowest"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
	SortAZ   = "az"
	SortZA   = "za"
)

// Query is the full read-side parameter set. Zero value or "none"/"all" in a
// field means pass-through for that stage.
type Query struct {
	FilterBy           string
	SortOrder          string
	SortAlphabetically string
	SearchQuery        string
	PriceSegment       string
}

func active(v, passthrough string) bool {
	return v != "" && v != passthrough
}

// Apply runs the fixed read pipeline over a snapshot: price segment, category,
// search, price sort, alphabetical sort. The store's read path and the basket
// view both consume this one function, so the two sides cannot drift.
//
// When both sorts are requested the alphabetical sort runs last and therefore
// decides the final ordering.
func Apply(items []Item, q Query) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	if active(q.PriceSegment, "none") && len(out) > 0 {
		// Mean over the pre-filter set, not the survivors of earlier stages.
		mean := meanPrice(out)
		kept := out[:0]
		for _, it := range out {
			if inSegment(it.Price, mean, q.PriceSegment) {
				kept = append(kept, it)
			}
		}
		out = kept
	}

	if active(q.FilterBy, "all") {
		kept := out[:0]
		for _, it := range out {
			if it.Category == q.FilterBy {
				kept = append(kept, it)
			}
		}
		out = kept
	}

	if q.SearchQuery != "" {
		needle := strings.ToLower(q.SearchQuery)
		kept := out[:0]
		for _, it := range out {
			if strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Category), needle) {
				kept = append(kept, it)
			}
		}
		out = kept
	}

	if active(q.SortOrder, "none") {
		asc := q.SortOrder == SortAsc
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Price < out[j].Price
			}
			return out[i].Price > out[j].Price
		})
	}

	if active(q.SortAlphabetically, "none") {
		cl := collate.New(language.English)
		az := q.SortAlphabetically == SortAZ
		sort.SliceStable(out, func(i, j int) bool {
			if az {
				return cl.CompareString(out[i].Name, out[j].Name) < 0
			}
			return cl.CompareString(out[i].Name, out[j].Name) > 0
		})
	}

	return out
}

func meanPrice(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum / float64(len(items))
}

func inSegment(price, mean float64, segment string) bool {
	switch segment {
	case SegmentHighest:
		return price > mean
	case SegmentAverage:
		return price >= mean*0.8 && price <= mean*1.2
	case SegmentLowest:
		return price < mean
	}
	return true
}
