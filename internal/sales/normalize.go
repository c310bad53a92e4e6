package sales

import "strconv"

// UnknownCategoryName labels fabricated categories when upstream sends only
// the flat sales_category_id.
const UnknownCategoryName = "Unknown"

// FromSale converts a daily sale record; items pass through unchanged.
func FromSale(rec SaleRecord) Entry {
	items := make([]NormalizedSale, len(rec.Items))
	for i, item := range rec.Items {
		items[i] = NormalizedSale(item)
	}
	return Entry{HotelID: rec.HotelID, Date: rec.Date, Items: items}
}

// FromBoxSale converts a box sale record: quantity becomes the amount string
// and a category object is fabricated when upstream did not nest one.
func FromBoxSale(rec BoxSaleRecord) Entry {
	items := make([]NormalizedSale, len(rec.Items))
	for i, item := range rec.Items {
		items[i] = normalizeBoxItem(item)
	}
	return Entry{HotelID: rec.HotelID, Date: rec.Date, Items: items}
}

func normalizeBoxItem(item BoxSaleItem) NormalizedSale {
	category := Category{ID: item.SalesCategoryID, Name: UnknownCategoryName}
	if item.SalesCategory != nil {
		category = *item.SalesCategory
	}
	return NormalizedSale{
		SalesCategoryID: item.SalesCategoryID,
		Amount:          strconv.FormatFloat(item.Quantity, 'f', -1, 64),
		SalesCategory:   category,
	}
}
