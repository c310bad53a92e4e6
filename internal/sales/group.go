package sales

import (
	"sort"
	"strings"
)

// Order controls group ordering by date.
type Order string

// Supported orders; descending is the dashboard default.
const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

// ParseOrder maps a query parameter to an Order, defaulting to descending.
func ParseOrder(raw string) Order {
	if Order(strings.ToLower(raw)) == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}

// Toggle flips the order.
func (o Order) Toggle() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// DayGroup is one visual group: every normalized item a hotel reported for a
// date, with the group total precomputed.
type DayGroup struct {
	HotelID int64            `json:"hotel_id"`
	Date    string           `json:"date"`
	Items   []NormalizedSale `json:"items"`
	Total   float64          `json:"total"`
}

type groupKey struct {
	hotelID int64
	date    string
}

// GroupByHotelDate collapses entries sharing (hotel_id, date) into one group
// per key. Every input item lands in exactly one group and keys are unique.
// Groups are ordered by date per order; entries with equal dates keep input
// order. Dates are ISO strings so lexical comparison is chronological.
func GroupByHotelDate(entries []Entry, order Order) []DayGroup {
	index := make(map[groupKey]int)
	groups := make([]DayGroup, 0, len(entries))
	for _, entry := range entries {
		key := groupKey{hotelID: entry.HotelID, date: entry.Date}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{HotelID: entry.HotelID, Date: entry.Date})
		}
		for _, item := range entry.Items {
			groups[i].Items = append(groups[i].Items, item)
			groups[i].Total += item.AmountValue()
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if order == OrderAsc {
			return groups[i].Date < groups[j].Date
		}
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// GrandTotal sums group totals over the visible set.
func GrandTotal(groups []DayGroup) float64 {
	var total float64
	for _, group := range groups {
		total += group.Total
	}
	return total
}

// ShareOfTotal computes amount/total*100 guarded against empty sets: a zero
// total yields 0, never NaN or Inf.
func ShareOfTotal(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}
