package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// MaxRawTopicLength bounds the spoken phrase passed to the normalizer.
const MaxRawTopicLength = 100

// FollowInput holds the parameters for following a topic.
type FollowInput struct {
	UserID   string
	RawTopic string
	Locale   string
}

// Validate checks all fields and collects all errors.
func (i FollowInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	raw := strings.TrimSpace(i.RawTopic)
	if raw == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if utf8.RuneCountInString(raw) > MaxRawTopicLength {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "max 100 characters"})
	}

	if _, err := domain.ParseLocale(i.Locale); err != nil {
		errs = append(errs, domain.FieldError{Field: "locale", Message: "expected language-region"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
