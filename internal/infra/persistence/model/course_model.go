package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// CourseModel mirrors the 'courses' table.
type CourseModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	School    string `gorm:"type:varchar(255);not null"`
	Term      string `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) ToDomain() *entity.Course {
	return &entity.Course{ID: m.ID, Name: m.Name, School: m.School, Term: m.Term}
}

func (m *CourseModel) FromDomain(c *entity.Course) {
	m.ID = c.ID
	m.Name = c.Name
	m.School = c.School
	m.Term = c.Term
}
