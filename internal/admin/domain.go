// Package admin proxies the admin CRUD screens: categories, users, managers,
// and hotels. Entity lifecycle is entirely server-owned; this layer validates
// payloads at the boundary and relays upstream responses as-is.
package admin

// CategoryRequest creates or updates a sales category.
type CategoryRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	CategoryTypeID int64   `json:"category_type_id" validate:"required,oneof=1 2 3"`
	Margin         float64 `json:"margin" validate:"gte=0,lte=100"`
}

// UserRequest creates or updates a hotel staff account.
type UserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	HotelID  int64  `json:"hotel_id" validate:"required,gt=0"`
}

// ManagerRequest creates or updates a manager account with its managed set.
type ManagerRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Phone    string  `json:"phone" validate:"required,max=20"`
	Password string  `json:"password,omitempty" validate:"omitempty,min=6"`
	HotelIDs []int64 `json:"hotel_ids" validate:"required,min=1,dive,gt=0"`
}

// HotelRequest creates or updates a hotel.
type HotelRequest struct {
	Name           string `json:"name" validate:"required,max=150"`
	City           string `json:"city" validate:"required,max=100"`
	CategoryTypeID int64  `json:"category_type_id" validate:"required,oneof=1 2 3"`
	HotelType      string `json:"hotel_type" validate:"required,max=50"`
}
