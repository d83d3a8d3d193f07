package request

type CreateBookingRequest struct {
	ShowID      string   `json:"showId" validate:"required"`
	SeatNumbers []string `json:"seatNumbers" validate:"required,min=1,max=6,unique,dive,required"`
	TotalAmount float64  `json:"totalAmount" validate:"gte=0"`
}
