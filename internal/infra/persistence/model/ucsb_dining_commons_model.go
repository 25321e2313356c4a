package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// UCSBDiningCommonsModel mirrors the 'ucsb_dining_commons' table. Code is a natural key.
type UCSBDiningCommonsModel struct {
	Code           string `gorm:"primaryKey;type:varchar(32)"`
	Name           string `gorm:"type:varchar(255);not null"`
	HasSackMeal    bool
	HasTakeOutMeal bool
	HasDiningCam   bool
	Latitude       float64
	Longitude      float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UCSBDiningCommonsModel) TableName() string {
	return "ucsb_dining_commons"
}

func (m *UCSBDiningCommonsModel) ToDomain() *entity.UCSBDiningCommons {
	return &entity.UCSBDiningCommons{
		Code:           m.Code,
		Name:           m.Name,
		HasSackMeal:    m.HasSackMeal,
		HasTakeOutMeal: m.HasTakeOutMeal,
		HasDiningCam:   m.HasDiningCam,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
	}
}

func (m *UCSBDiningCommonsModel) FromDomain(c *entity.UCSBDiningCommons) {
	m.Code = c.Code
	m.Name = c.Name
	m.HasSackMeal = c.HasSackMeal
	m.HasTakeOutMeal = c.HasTakeOutMeal
	m.HasDiningCam = c.HasDiningCam
	m.Latitude = c.Latitude
	m.Longitude = c.Longitude
}
