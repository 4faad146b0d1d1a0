package dto

type AddItemRequest struct {
	TourName  string  `json:"tour_name" binding:"required"`
	TourPrice float64 `json:"tour_price" binding:"required"`
}
