package store

import (
	"bitwise74/resume-api/internal/model"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder is case-insensitive. Anything unknown sorts newest first
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}

	return SortDesc
}

// ResumeUpdate holds the fields a PATCH may change. Nil or blank fields
// keep their stored value
type ResumeUpdate struct {
	Title   *string
	Content *string
}

type Resumes struct {
	db  *gorm.DB
	now func() time.Time
}

func NewResumes(db *gorm.DB) *Resumes {
	return &Resumes{db: db, now: time.Now}
}

func (r *Resumes) Create(ctx context.Context, resume *model.Resume) error {
	if resume.Status == "" {
		resume.Status = model.StatusApply
	}

	return r.db.WithContext(ctx).Create(resume).Error
}

// List returns every resume of owner with the owner's profile name
func (r *Resumes) List(ctx context.Context, owner uint, order SortOrder) ([]model.ResumeListItem, error) {
	desc := order != SortAsc

	items := []model.ResumeListItem{}

	err := r.db.WithContext(ctx).
		Model(&model.Resume{}).
		Select("resumes.id, profiles.name, resumes.title, resumes.content, resumes.status, resumes.created_at, resumes.updated_at").
		Joins("JOIN profiles ON profiles.user_id = resumes.user_id").
		Where("resumes.user_id = ?", owner).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "resumes", Name: "created_at"}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "resumes", Name: "id"}, Desc: desc}).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []model.ResumeListItem{}
	}

	return items, nil
}

// FindOwned fetches a resume only if owner created it. Missing and foreign
// resumes both return ErrNotFound
func (r *Resumes) FindOwned(ctx context.Context, id, owner uint) (*model.Resume, error) {
	var resume model.Resume

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &resume, nil
}

// UpdateOwned changes the supplied fields and always refreshes updated_at.
// The status column is never written
func (r *Resumes) UpdateOwned(ctx context.Context, id, owner uint, u ResumeUpdate) (*model.Resume, error) {
	if _, err := r.FindOwned(ctx, id, owner); err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": r.now()}

	if u.Title != nil && strings.TrimSpace(*u.Title) != "" {
		updates["title"] = *u.Title
	}

	if u.Content != nil && strings.TrimSpace(*u.Content) != "" {
		updates["content"] = *u.Content
	}

	res := r.db.WithContext(ctx).
		Model(&model.Resume{}).
		Where("id = ? AND user_id = ?", id, owner).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	// Removed between the check and the update
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindOwned(ctx, id, owner)
}

func (r *Resumes) DeleteOwned(ctx context.Context, id, owner uint) error {
	if _, err := r.FindOwned(ctx, id, owner); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		Delete(&model.Resume{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
