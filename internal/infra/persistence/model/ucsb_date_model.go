package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// UCSBDateModel mirrors the 'ucsb_dates' table.
type UCSBDateModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	QuarterYYYYQ  string `gorm:"column:quarter_yyyyq;type:varchar(5);not null;index"`
	Name          string `gorm:"type:varchar(255);not null"`
	LocalDateTime entity.LocalDateTime
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UCSBDateModel) TableName() string {
	return "ucsb_dates"
}

func (m *UCSBDateModel) ToDomain() *entity.UCSBDate {
	return &entity.UCSBDate{
		ID:            m.ID,
		QuarterYYYYQ:  m.QuarterYYYYQ,
		Name:          m.Name,
		LocalDateTime: m.LocalDateTime,
	}
}

func (m *UCSBDateModel) FromDomain(d *entity.UCSBDate) {
	m.ID = d.ID
	m.QuarterYYYYQ = d.QuarterYYYYQ
	m.Name = d.Name
	m.LocalDateTime = d.LocalDateTime
}
