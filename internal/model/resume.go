package model

import "time"

type ResumeStatus string

const (
	StatusApply      ResumeStatus = "APPLY"
	StatusDrop       ResumeStatus = "DROP"
	StatusPass       ResumeStatus = "PASS"
	StatusInterview1 ResumeStatus = "INTERVIEW1"
	StatusInterview2 ResumeStatus = "INTERVIEW2"
	StatusFinalPass  ResumeStatus = "FINAL_PASS"
)

type Resume struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint         `gorm:"index;not null" json:"userId"`
	Title     string       `gorm:"not null" json:"title"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	Status    ResumeStatus `gorm:"type:varchar(16);not null;default:APPLY" json:"status"`
	CreatedAt time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ResumeListItem is a resume with the owner's display name in place of
// the owner's id
type ResumeListItem struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Status    ResumeStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
