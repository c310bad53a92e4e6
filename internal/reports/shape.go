package reports

import (
	"sort"

	"github.com/hoteldesk/hoteldesk/internal/sales"
)

// RollupByCity groups hotel totals by city, cities ordered by total
// descending. Hotels within a city keep input order except for the same
// descending sort; per-hotel shares are relative to the city total.
func RollupByCity(rows []HotelSales) []CityGroup {
	index := make(map[string]int)
	groups := make([]CityGroup, 0)
	for _, row := range rows {
		i, ok := index[row.City]
		if !ok {
			i = len(groups)
			index[row.City] = i
			groups = append(groups, CityGroup{City: row.City})
		}
		groups[i].Total += row.Total
	}
	for i := range groups {
		groups[i].DisplayTotal = sales.FormatAmount(groups[i].Total)
	}
	for _, row := range rows {
		i := index[row.City]
		groups[i].Hotels = append(groups[i].Hotels, hotelShare(row, groups[i].Total))
	}
	for i := range groups {
		hotels := groups[i].Hotels
		sort.SliceStable(hotels, func(a, b int) bool { return hotels[a].Total > hotels[b].Total })
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Total > groups[b].Total })
	return groups
}

// Compare ranks hotels by revenue descending with shares of the grand total.
func Compare(rows []HotelSales) Comparison {
	var grand float64
	for _, row := range rows {
		grand += row.Total
	}
	shares := make([]HotelShare, len(rows))
	for i, row := range rows {
		shares[i] = hotelShare(row, grand)
	}
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].Total > shares[b].Total })
	return Comparison{Hotels: shares, GrandTotal: grand}
}
