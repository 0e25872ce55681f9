package domain

import "time"

// Topic is the single technology topic a user follows. It is replaced
// wholesale on every follow action and never recomputed afterwards.
type Topic struct {
	UserID          string
	RawTopic        string
	Topic           string
	Reading         string
	IsTechnicalTerm bool
	Locale          Locale
	CreatedAt       time.Time
}

// NormalizedTopic is the output of topic normalization.
type NormalizedTopic struct {
	OriginalText    string
	TransformedText string
	Reading         string
	IsTechnicalTerm bool
}

// Validate checks that every required field is present.
func (n NormalizedTopic) Validate() error {
	var errs []FieldError
	if n.TransformedText == "" {
		errs = append(errs, FieldError{Field: "transformed_text", Message: "required"})
	}
	if n.Reading == "" {
		errs = append(errs, FieldError{Field: "reading", Message: "required"})
	}
	if n.OriginalText == "" {
		errs = append(errs, FieldError{Field: "original_text", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// NewTopic builds the stored topic from a raw phrase and its normalization.
func NewTopic(userID, raw string, n NormalizedTopic, loc Locale, now time.Time) Topic {
	return Topic{
		UserID:          userID,
		RawTopic:        raw,
		Topic:           n.TransformedText,
		Reading:         n.Reading,
		IsTechnicalTerm: n.IsTechnicalTerm,
		Locale:          loc,
		CreatedAt:       now,
	}
}
