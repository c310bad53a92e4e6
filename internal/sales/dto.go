package sales

// CreateSaleRequest is the staff data-entry payload for a daily sale.
type CreateSaleRequest struct {
	HotelID int64                   `json:"hotel_id" validate:"required,gt=0"`
	Date    string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Items   []CreateSaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateSaleItemRequest is one revenue line of a daily sale entry.
type CreateSaleItemRequest struct {
	SalesCategoryID int64  `json:"sales_category_id" validate:"required,gt=0"`
	Amount          string `json:"amount" validate:"required,numeric"`
}

// CreateBoxSaleRequest is the staff data-entry payload for a box sale.
type CreateBoxSaleRequest struct {
	HotelID int64                      `json:"hotel_id" validate:"required,gt=0"`
	Date    string                     `json:"date" validate:"required,datetime=2006-01-02"`
	Items   []CreateBoxSaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateBoxSaleItemRequest is one quantity line of a box sale entry.
type CreateBoxSaleItemRequest struct {
	SalesCategoryID int64   `json:"sales_category_id" validate:"required,gt=0"`
	Quantity        float64 `json:"quantity" validate:"gte=0"`
}
