package entity

// Student is an enrolled student and their class year.
type Student struct {
	ID    int64  `json:"id" query:"id"`
	Name  string `json:"name" query:"name" validate:"required"`
	Major string `json:"major" query:"major" validate:"required"`
	Year  int    `json:"year" query:"year" validate:"gte=1"`
}
