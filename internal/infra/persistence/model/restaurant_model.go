package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	PhoneNumber int64
	City        string `gorm:"type:varchar(100);not null"`
	State       string `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

func (m *RestaurantModel) ToDomain() *entity.Restaurant {
	return &entity.Restaurant{ID: m.ID, PhoneNumber: m.PhoneNumber, City: m.City, State: m.State}
}

func (m *RestaurantModel) FromDomain(r *entity.Restaurant) {
	m.ID = r.ID
	m.PhoneNumber = r.PhoneNumber
	m.City = r.City
	m.State = r.State
}
