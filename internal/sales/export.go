package sales

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV serialises the currently grouped, currently filtered view: item
// rows, a subtotal row per group, and one grand-total row. encoding/csv
// applies standard quoting, so category or hotel names containing commas or
// quotes survive intact.
func WriteCSV(w io.Writer, groups []DayGroup) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Date", "Hotel ID", "Category", "Amount"}); err != nil {
		return err
	}
	for _, group := range groups {
		for _, item := range group.Items {
			if err := writer.Write([]string{
				group.Date,
				formatID(group.HotelID),
				item.SalesCategory.Name,
				FormatAmount(item.AmountValue()),
			}); err != nil {
				return err
			}
		}
		if err := writer.Write([]string{group.Date, formatID(group.HotelID), "Subtotal", FormatAmount(group.Total)}); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{"", "", "Total", FormatAmount(GrandTotal(groups))}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
