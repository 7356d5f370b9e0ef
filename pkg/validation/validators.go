package validation

import (
	"regexp"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
)

var (
	// Letters, spaces and the punctuation found in personal names: . ' - /
	nameRegex = regexp.MustCompile(`^[\p{L} .'/-]+$`)

	// E164-like phone: optional +, 7-15 digits; spaces and dashes are stripped first
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		RegisterValidators(validate)
	})
	return validate
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("job_type", ValidJobType)
}

// ValidName accepts letters, spaces and name punctuation. Empty passes; use required.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(NormalizePhone(val))
}

// NormalizePhone drops the separators people type between digit groups.
func NormalizePhone(val string) string {
	out := make([]rune, 0, len(val))
	for _, r := range val {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		// supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

func ValidJobType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract, domain.JobTypeInternship:
		return true
	}
	return false
}
