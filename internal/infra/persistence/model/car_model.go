package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// CarModel mirrors the 'cars' table.
type CarModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Make      string `gorm:"type:varchar(100);not null"`
	Model     string `gorm:"type:varchar(100);not null"`
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}

func (m *CarModel) ToDomain() *entity.Car {
	return &entity.Car{ID: m.ID, Make: m.Make, Model: m.Model, Year: m.Year}
}

func (m *CarModel) FromDomain(c *entity.Car) {
	m.ID = c.ID
	m.Make = c.Make
	m.Model = c.Model
	m.Year = c.Year
}
