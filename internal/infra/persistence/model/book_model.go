package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Author    string `gorm:"type:varchar(255);not null"`
	Date      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

func (m *BookModel) ToDomain() *entity.Book {
	return &entity.Book{ID: m.ID, Title: m.Title, Author: m.Author, Date: m.Date}
}

func (m *BookModel) FromDomain(b *entity.Book) {
	m.ID = b.ID
	m.Title = b.Title
	m.Author = b.Author
	m.Date = b.Date
}
