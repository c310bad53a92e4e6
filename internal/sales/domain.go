// Package sales reshapes the upstream sale payloads into the single
// renderable form the dashboard consumes. Daily sales carry currency amounts,
// box sales carry unit quantities; both collapse into NormalizedSale so one
// rendering path serves either kind.
package sales

import "strconv"

// Category is a sales taxonomy entry scoped to a channel.
type Category struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	CategoryTypeID int64   `json:"category_type_id,omitempty"`
	Margin         float64 `json:"margin,omitempty"`
}

// Channel identifiers for category_type_id.
const (
	ChannelHotel    int64 = 1
	ChannelTrade    int64 = 2
	ChannelWineshop int64 = 3
)

// SaleItem is one revenue line of a daily sale. Amount arrives as a decimal
// string from upstream and is formatted, never mutated, for display.
type SaleItem struct {
	SalesCategoryID int64    `json:"sales_category_id"`
	Amount          string   `json:"amount"`
	SalesCategory   Category `json:"sales_category"`
}

// SaleRecord is a per-hotel, per-date revenue record.
type SaleRecord struct {
	HotelID int64      `json:"hotel_id"`
	Date    string     `json:"date"`
	Items   []SaleItem `json:"items"`
}

// BoxSaleItem is the quantity-based variant line. Upstream does not always
// nest the category object here.
type BoxSaleItem struct {
	SalesCategoryID int64     `json:"sales_category_id"`
	Quantity        float64   `json:"quantity"`
	SalesCategory   *Category `json:"sales_category,omitempty"`
}

// BoxSaleRecord is a per-hotel, per-date quantity record.
type BoxSaleRecord struct {
	HotelID int64         `json:"hotel_id"`
	Date    string        `json:"date"`
	Items   []BoxSaleItem `json:"items"`
}

// NormalizedSale is the common shape both sale kinds reduce to.
type NormalizedSale struct {
	SalesCategoryID int64    `json:"sales_category_id"`
	Amount          string   `json:"amount"`
	SalesCategory   Category `json:"sales_category"`
}

// AmountValue parses the amount for aggregation; malformed amounts count as
// zero rather than poisoning a total.
func (n NormalizedSale) AmountValue() float64 {
	v, err := strconv.ParseFloat(n.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// Entry is one flat normalized record, the unit fed into filtering and
// grouping.
type Entry struct {
	HotelID int64            `json:"hotel_id"`
	Date    string           `json:"date"`
	Items   []NormalizedSale `json:"items"`
}
