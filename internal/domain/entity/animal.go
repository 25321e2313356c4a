package entity

// Animal is a named animal with a color and a height.
type Animal struct {
	ID     int64  `json:"id" query:"id"`
	Name   string `json:"name" query:"name" validate:"required"`
	Color  string `json:"color" query:"color" validate:"required"`
	Height int    `json:"height" query:"height" validate:"gte=0"`
}
