package reports

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hoteldesk/hoteldesk/internal/sales"
)

// WriteCityCSV serialises the city rollup: hotel rows, a subtotal per city,
// and a grand-total row. Standard CSV quoting protects names with commas.
func WriteCityCSV(w io.Writer, groups []CityGroup) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"City", "Hotel", "Total", "Share"}); err != nil {
		return err
	}
	var grand float64
	for _, group := range groups {
		for _, hotel := range group.Hotels {
			if err := writer.Write([]string{
				group.City,
				hotel.Name,
				sales.FormatAmount(hotel.Total),
				formatShare(hotel.Share),
			}); err != nil {
				return err
			}
		}
		if err := writer.Write([]string{group.City, "Subtotal", sales.FormatAmount(group.Total), ""}); err != nil {
			return err
		}
		grand += group.Total
	}
	if err := writer.Write([]string{"", "Total", sales.FormatAmount(grand), ""}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WriteComparisonCSV serialises the hotel ranking.
func WriteComparisonCSV(w io.Writer, comparison Comparison) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Hotel", "Total", "Share"}); err != nil {
		return err
	}
	for _, hotel := range comparison.Hotels {
		if err := writer.Write([]string{
			hotel.Name,
			sales.FormatAmount(hotel.Total),
			formatShare(hotel.Share),
		}); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{"Total", sales.FormatAmount(comparison.GrandTotal), ""}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func formatShare(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
