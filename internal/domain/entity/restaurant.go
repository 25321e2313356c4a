package entity

type Restaurant struct {
	ID          int64  `json:"id" query:"id"`
	PhoneNumber int64  `json:"phoneNumber" query:"phoneNumber" validate:"gte=0"`
	City        string `json:"city" query:"city" validate:"required"`
	State       string `json:"state" query:"state" validate:"required"`
}
