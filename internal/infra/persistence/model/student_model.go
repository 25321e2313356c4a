package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// StudentModel mirrors the 'students' table.
type StudentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Major     string `gorm:"type:varchar(255);not null"`
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) ToDomain() *entity.Student {
	return &entity.Student{ID: m.ID, Name: m.Name, Major: m.Major, Year: m.Year}
}

func (m *StudentModel) FromDomain(s *entity.Student) {
	m.ID = s.ID
	m.Name = s.Name
	m.Major = s.Major
	m.Year = s.Year
}
