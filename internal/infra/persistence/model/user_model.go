package model

import (
	"time"

	"ucsbapi/internal/domain/entity"
)

// UserModel mirrors the 'users' table. Rows are upserted on sign-in, keyed by email.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	GoogleSub     string `gorm:"type:varchar(255)"`
	PictureURL    string `gorm:"type:text"`
	FullName      string `gorm:"type:varchar(255)"`
	GivenName     string `gorm:"type:varchar(255)"`
	FamilyName    string `gorm:"type:varchar(255)"`
	EmailVerified bool
	Locale        string `gorm:"type:varchar(32)"`
	HostedDomain  string `gorm:"type:varchar(255)"`
	Admin         bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		GoogleSub:     m.GoogleSub,
		PictureURL:    m.PictureURL,
		FullName:      m.FullName,
		GivenName:     m.GivenName,
		FamilyName:    m.FamilyName,
		EmailVerified: m.EmailVerified,
		Locale:        m.Locale,
		HostedDomain:  m.HostedDomain,
		Admin:         m.Admin,
	}
}

func (m *UserModel) FromDomain(u *entity.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.GoogleSub = u.GoogleSub
	m.PictureURL = u.PictureURL
	m.FullName = u.FullName
	m.GivenName = u.GivenName
	m.FamilyName = u.FamilyName
	m.EmailVerified = u.EmailVerified
	m.Locale = u.Locale
	m.HostedDomain = u.HostedDomain
	m.Admin = u.Admin
}
