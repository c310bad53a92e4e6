package sales

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a currency value for display cells.
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// ItemVM is one rendered line with its share of the visible total.
type ItemVM struct {
	CategoryID    int64   `json:"category_id"`
	Category      string  `json:"category"`
	Amount        string  `json:"amount"`
	DisplayAmount string  `json:"display_amount"`
	Share         float64 `json:"share"`
}

// GroupVM is one rendered day group.
type GroupVM struct {
	HotelID      int64    `json:"hotel_id"`
	Date         string   `json:"date"`
	Total        float64  `json:"total"`
	DisplayTotal string   `json:"display_total"`
	Items        []ItemVM `json:"items"`
}

// ViewVM drives the sales screen rendering.
type ViewVM struct {
	Groups            []GroupVM `json:"groups"`
	GrandTotal        float64   `json:"grand_total"`
	DisplayGrandTotal string    `json:"display_grand_total"`
	Order             Order     `json:"order"`
}

// FromGroups maps grouped records into the view model. Shares are computed
// against the grand total of the visible set.
func FromGroups(groups []DayGroup, order Order) ViewVM {
	grand := GrandTotal(groups)
	vm := ViewVM{
		Groups:            make([]GroupVM, len(groups)),
		GrandTotal:        grand,
		DisplayGrandTotal: FormatAmount(grand),
		Order:             order,
	}
	for i, group := range groups {
		gvm := GroupVM{
			HotelID:      group.HotelID,
			Date:         group.Date,
			Total:        group.Total,
			DisplayTotal: FormatAmount(group.Total),
			Items:        make([]ItemVM, len(group.Items)),
		}
		for j, item := range group.Items {
			value := item.AmountValue()
			gvm.Items[j] = ItemVM{
				CategoryID:    item.SalesCategory.ID,
				Category:      item.SalesCategory.Name,
				Amount:        item.Amount,
				DisplayAmount: FormatAmount(value),
				Share:         ShareOfTotal(value, grand),
			}
		}
		vm.Groups[i] = gvm
	}
	return vm
}
