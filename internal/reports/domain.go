// Package reports serves the read-only admin views: sales by city, hotel
// comparison, the expense overview, activity logs, and missing sales.
package reports

import "github.com/hoteldesk/hoteldesk/internal/sales"

// HotelSales is one hotel's revenue total as upstream reports it.
type HotelSales struct {
	HotelID int64   `json:"hotel_id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Total   float64 `json:"total"`
}

// HotelShare is a hotel row with its share of the enclosing total.
type HotelShare struct {
	HotelID      int64   `json:"hotel_id"`
	Name         string  `json:"name"`
	Total        float64 `json:"total"`
	DisplayTotal string  `json:"display_total"`
	Share        float64 `json:"share"`
}

// CityGroup rolls hotels up by city.
type CityGroup struct {
	City         string       `json:"city"`
	Total        float64      `json:"total"`
	DisplayTotal string       `json:"display_total"`
	Hotels       []HotelShare `json:"hotels"`
}

// Comparison ranks hotels by revenue against the grand total.
type Comparison struct {
	Hotels     []HotelShare `json:"hotels"`
	GrandTotal float64      `json:"grand_total"`
}

func hotelShare(h HotelSales, total float64) HotelShare {
	return HotelShare{
		HotelID:      h.HotelID,
		Name:         h.Name,
		Total:        h.Total,
		DisplayTotal: sales.FormatAmount(h.Total),
		Share:        sales.ShareOfTotal(h.Total, total),
	}
}
