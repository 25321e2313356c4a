package entity

// Book is a title by an author, with its publication year.
type Book struct {
	ID     int64  `json:"id" query:"id"`
	Title  string `json:"title" query:"title" validate:"required"`
	Author string `json:"author" query:"author" validate:"required"`
	Date   int    `json:"date" query:"date"`
}
