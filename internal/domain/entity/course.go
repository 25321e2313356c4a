package entity

// Course is a course offering at a school in a term.
type Course struct {
	ID     int64  `json:"id" query:"id"`
	Name   string `json:"name" query:"name" validate:"required"`
	School string `json:"school" query:"school" validate:"required"`
	Term   string `json:"term" query:"term" validate:"required"`
}
