package model

import "time"

// Profile holds the public side of an account. It's created together with the
// User and keeps a copy of the email so it can be served without touching users
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Email     string    `gorm:"not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
