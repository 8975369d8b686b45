// Package internal holds the dependencies shared by every handler
package internal

import (
	"bitwise74/resume-api/config"
	"bitwise74/resume-api/internal/store"
	"bitwise74/resume-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Argon    *security.ArgonHash
	Tokens   *security.TokenService
	Accounts *store.Accounts
	Resumes  *store.Resumes
	Config   *config.Config
}
