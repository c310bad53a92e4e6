package sales

import "strings"

// FilterByCategory retains items whose category name contains term,
// case-insensitively. It runs before grouping so every derived total and
// percentage reflects the filtered set, not the unfiltered superset. An
// empty term returns the input unchanged.
func FilterByCategory(entries []Entry, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		var items []NormalizedSale
		for _, item := range entry.Items {
			if strings.Contains(strings.ToLower(item.SalesCategory.Name), term) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		filtered = append(filtered, Entry{HotelID: entry.HotelID, Date: entry.Date, Items: items})
	}
	return filtered
}
