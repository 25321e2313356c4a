package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// AnimalModel mirrors the 'animals' table.
type AnimalModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Color     string `gorm:"type:varchar(255);not null"`
	Height    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnimalModel) TableName() string {
	return "animals"
}

func (m *AnimalModel) ToDomain() *entity.Animal {
	return &entity.Animal{ID: m.ID, Name: m.Name, Color: m.Color, Height: m.Height}
}

func (m *AnimalModel) FromDomain(a *entity.Animal) {
	m.ID = a.ID
	m.Name = a.Name
	m.Color = a.Color
	m.Height = a.Height
}
