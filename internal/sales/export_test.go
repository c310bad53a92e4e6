package sales

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVIncludesSubtotalsAndGrandTotal(t *testing.T) {
	groups := GroupByHotelDate([]Entry{
		{HotelID: 1, Date: "2025-03-01", Items: []NormalizedSale{
			{Amount: "100", SalesCategory: Category{ID: 1, Name: "Rooms"}},
		}},
		{HotelID: 2, Date: "2025-03-02", Items: []NormalizedSale{
			{Amount: "50", SalesCategory: Category{ID: 2, Name: "Bar"}},
		}},
	}, OrderAsc)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, groups))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Date", "Hotel ID", "Category", "Amount"}, rows[0])
	assert.Equal(t, []string{"2025-03-01", "1", "Rooms", "100.00"}, rows[1])
	assert.Equal(t, []string{"2025-03-01", "1", "Subtotal", "100.00"}, rows[2])
	assert.Equal(t, []string{"2025-03-02", "2", "Bar", "50.00"}, rows[3])
	assert.Equal(t, []string{"2025-03-02", "2", "Subtotal", "50.00"}, rows[4])
	assert.Equal(t, []string{"", "", "Total", "150.00"}, rows[5])
}

func TestWriteCSVQuotesSpecialCharacters(t *testing.T) {
	groups := []DayGroup{
		{HotelID: 1, Date: "2025-03-01", Total: 10, Items: []NormalizedSale{
			{Amount: "10", SalesCategory: Category{ID: 1, Name: `Food, "Fine" Dining`}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, groups))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// The name with comma and quotes must survive a parse round trip.
	assert.Equal(t, `Food, "Fine" Dining`, rows[1][2])
}

func TestWriteCSVEmptyViewStillEmitsTotalRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"", "", "Total", "0.00"}, rows[1])
}
