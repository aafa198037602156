package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	PostedJobs     []Job          `gorm:"foreignKey:EmployerID" json:"-"`
	MyApplications []Application  `gorm:"foreignKey:ApplicantID" json:"-"`
	RefreshTokens  []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
