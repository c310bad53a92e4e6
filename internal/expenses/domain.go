// Package expenses serves the monthly expense sheet screens. Categories are
// a fixed closed set; sheets are keyed by (hotel, year, month) and owned by
// the upstream backend.
package expenses

import "github.com/hoteldesk/hoteldesk/internal/sales"

// Expense category keys, the complete set the backend accepts.
const (
	CategoryRent          = "rent"
	CategoryLicenseFee    = "license_fee"
	CategorySalary        = "salary"
	CategoryLightBill     = "light_bill"
	CategoryInterest      = "interest"
	CategoryMiscellaneous = "miscellaneous"
)

// Categories lists every expense category in display order.
func Categories() []string {
	return []string{
		CategoryRent,
		CategoryLicenseFee,
		CategorySalary,
		CategoryLightBill,
		CategoryInterest,
		CategoryMiscellaneous,
	}
}

// Sheet is one hotel's expense record for a month.
type Sheet struct {
	HotelID       int64   `json:"hotel_id"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Rent          float64 `json:"rent"`
	LicenseFee    float64 `json:"license_fee"`
	Salary        float64 `json:"salary"`
	LightBill     float64 `json:"light_bill"`
	Interest      float64 `json:"interest"`
	Miscellaneous float64 `json:"miscellaneous"`
}

// Amount returns the value stored under a category key.
func (s Sheet) Amount(category string) float64 {
	switch category {
	case CategoryRent:
		return s.Rent
	case CategoryLicenseFee:
		return s.LicenseFee
	case CategorySalary:
		return s.Salary
	case CategoryLightBill:
		return s.LightBill
	case CategoryInterest:
		return s.Interest
	case CategoryMiscellaneous:
		return s.Miscellaneous
	}
	return 0
}

// Total sums the sheet across all categories.
func (s Sheet) Total() float64 {
	var total float64
	for _, category := range Categories() {
		total += s.Amount(category)
	}
	return total
}

// CategoryShare is one slice of the monthly breakdown.
type CategoryShare struct {
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	DisplayAmount string  `json:"display_amount"`
	Share         float64 `json:"share"`
}

// Breakdown computes per-category shares of the month total, zero-guarded so
// an empty sheet yields 0 shares rather than NaN.
func (s Sheet) Breakdown() []CategoryShare {
	total := s.Total()
	shares := make([]CategoryShare, 0, len(Categories()))
	for _, category := range Categories() {
		amount := s.Amount(category)
		shares = append(shares, CategoryShare{
			Category:      category,
			Amount:        amount,
			DisplayAmount: sales.FormatAmount(amount),
			Share:         sales.ShareOfTotal(amount, total),
		})
	}
	return shares
}
