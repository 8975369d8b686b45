package validators

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinContentLength is the least amount of characters a resume body can have
const MinContentLength = 150

var (
	ErrTitleEmpty      = errors.New("Resume title is required")
	ErrContentEmpty    = errors.New("Resume content is required")
	ErrContentTooShort = errors.New("Resume content must be at least 150 characters long")
	ErrNothingToUpdate = errors.New("No fields to update were provided")
)

func TitleValidator(t string) error {
	if strings.TrimSpace(t) == "" {
		return ErrTitleEmpty
	}

	return nil
}

// ContentValidator checks that the content is present and long enough.
// Length is counted in characters, not bytes
func ContentValidator(c string) error {
	if strings.TrimSpace(c) == "" {
		return ErrContentEmpty
	}

	if utf8.RuneCountInString(c) < MinContentLength {
		return ErrContentTooShort
	}

	return nil
}

// ResumeCreateValidator checks the title first and then the content
func ResumeCreateValidator(title, content string) error {
	if err := TitleValidator(title); err != nil {
		return err
	}

	return ContentValidator(content)
}

// ResumeUpdateValidator requires at least one field. Omitted fields are nil,
// blank ones count as omitted
func ResumeUpdateValidator(title, content *string) error {
	hasTitle := title != nil && strings.TrimSpace(*title) != ""
	hasContent := content != nil && strings.TrimSpace(*content) != ""

	if !hasTitle && !hasContent {
		return ErrNothingToUpdate
	}

	if hasContent {
		return ContentValidator(*content)
	}

	return nil
}
