package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogapi/internal/errs"
	"blogapi/internal/models"
)

// Field constraints. The error messages below quote the same bounds.
const (
	titleRule    = "min=3,max=200"
	contentRule  = "min=10,max=200"
	passwordRule = "min=8,max=100"
	nameRule     = "min=2,max=50"
	commentRule  = "min=1,max=1000"
	tagRule      = "min=1,max=30"

	maxTags = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type rules struct {
	v *validator.Validate
}

func newRules() *rules {
	return &rules{v: validator.New()}
}

// rangeCheck runs a min/max rule and picks the message matching the
// failing tag.
func (r *rules) rangeCheck(value, rule, minMsg, maxMsg string) error {
	err := r.v.Var(value, rule)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		return errs.Validation(maxMsg)
	}
	return errs.Validation(minMsg)
}

func (r *rules) title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.Validation("Title is required")
	}
	return r.rangeCheck(title, titleRule,
		"Title must be at least 3 characters",
		"Title must be less than 200 characters")
}

func (r *rules) content(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.Validation("Content is required")
	}
	return r.rangeCheck(content, contentRule,
		"Content must be at least 10 characters",
		"Content must be less than 200 characters")
}

func (r *rules) tags(tags []string) error {
	if len(tags) > maxTags {
		return errs.Validation("Maximum 10 tags allowed")
	}
	for _, tag := range tags {
		if err := r.v.Var(tag, tagRule); err != nil {
			return errs.Validation("Each tag must be between 1 and 30 characters")
		}
	}
	return nil
}

func (r *rules) status(status string) error {
	if status != models.StatusDraft && status != models.StatusPublished {
		return errs.Validation("Status must be either draft or published")
	}
	return nil
}

func (r *rules) email(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.Validation("Invalid email format")
	}
	return nil
}

func (r *rules) password(password string) error {
	return r.rangeCheck(password, passwordRule,
		"Password must be at least 8 characters",
		"Password must be less than 100 characters")
}

func (r *rules) name(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.Validation("Name is required")
	}
	return r.rangeCheck(name, nameRule,
		"Name must be at least 2 characters",
		"Name must be less than 50 characters")
}

func (r *rules) commentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.Validation("Comment content is required")
	}
	if err := r.v.Var(content, commentRule); err != nil {
		return errs.Validation("Comment must be between 1 and 1000 characters")
	}
	return nil
}
