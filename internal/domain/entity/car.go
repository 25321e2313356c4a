package entity

type Car struct {
	ID    int64  `json:"id" query:"id"`
	Make  string `json:"make" query:"make" validate:"required"`
	Model string `json:"model" query:"model" validate:"required"`
	Year  int    `json:"year" query:"year" validate:"gte=1886"`
}
