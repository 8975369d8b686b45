// Package model defines database models
package model

import "time"

type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleRecruiter Role = "RECRUITER"
)

// User is an account. Email is the login identity and is compared case-sensitively
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"userId"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:APPLICANT" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Profile Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Resumes []Resume `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
