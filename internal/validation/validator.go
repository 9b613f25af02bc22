package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"altoque/internal/domain"
	"altoque/internal/i18n"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxFieldLength caps every sanitized value, in characters.
	MaxFieldLength = 1000

	minNameLength = 2
)

var (
	sqlKeywordPattern = regexp.MustCompile(`(?i)--|\b(?:SELECT|INSERT|UPDATE|DELETE|DROP|ALTER|EXEC|UNION|XP_)\b`)
	angleBrackets     = strings.NewReplacer("<", "", ">", "")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	phoneStrip   = regexp.MustCompile(`[^\d+]`)
	irishPhone   = regexp.MustCompile(`^(?:\+353\d{8,9}|0\d{8,9})$`)
)

// Sanitize strips SQL statement keywords, "--" and angle brackets, trims the
// result and caps it at MaxFieldLength characters.
func Sanitize(raw string) string {
	s := sqlKeywordPattern.ReplaceAllString(raw, "")
	s = angleBrackets.Replace(s)
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > MaxFieldLength {
		s = string(runes[:MaxFieldLength])
	}
	return s
}

// SanitizeAnswer cleans a placement answer. Keywords are kept because words
// like "unión" are legitimate answers; only angle brackets go.
func SanitizeAnswer(raw string) string {
	s := strings.TrimSpace(angleBrackets.Replace(raw))
	if runes := []rune(s); len(runes) > MaxFieldLength {
		s = string(runes[:MaxFieldLength])
	}
	return s
}

// SanitizeAnswers applies SanitizeAnswer to every answer and drops the ones
// left empty.
func SanitizeAnswers(answers domain.AnswerSet) domain.AnswerSet {
	clean := make(domain.AnswerSet, len(answers))
	for i, v := range answers {
		if v = SanitizeAnswer(v); v != "" {
			clean[i] = v
		}
	}
	return clean
}

// SanitizeValue coerces an arbitrary decoded JSON value to text before sanitizing it.
func SanitizeValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return Sanitize(t)
	default:
		return Sanitize(fmt.Sprint(t))
	}
}

// SanitizeRecord applies Sanitize to every field of the record.
func SanitizeRecord(r domain.RegistrationRecord) domain.RegistrationRecord {
	return domain.RegistrationRecord{
		Timestamp: Sanitize(r.Timestamp),
		Name:      Sanitize(r.Name),
		Email:     Sanitize(r.Email),
		Phone:     Sanitize(r.Phone),
		Course:    Sanitize(r.Course),
		Level:     Sanitize(r.Level),
		Schedule:  Sanitize(r.Schedule),
		Message:   Sanitize(r.Message),
	}
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts an empty value; otherwise, after dropping everything but
// digits and '+', the number must be +353 or 0 followed by 8-9 digits.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return irishPhone.MatchString(phoneStrip.ReplaceAllString(phone, ""))
}

// Validate checks a registration record with English messages.
func Validate(r domain.RegistrationRecord) domain.FieldErrors {
	return ValidateLocalized(r, i18n.DefaultLocale)
}

// ValidateLocalized checks a registration record and returns one message per
// failing field in the requested locale.
func ValidateLocalized(r domain.RegistrationRecord, locale string) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if len([]rune(strings.TrimSpace(r.Name))) < minNameLength {
		errs[domain.FieldName] = i18n.T(locale, "err_name")
	}
	if !IsValidEmail(r.Email) {
		errs[domain.FieldEmail] = i18n.T(locale, "err_email")
	}
	if !IsValidPhone(r.Phone) {
		errs[domain.FieldPhone] = i18n.T(locale, "err_phone")
	}
	if r.Course == "" || !domain.IsKnownCourse(r.Course) {
		errs[domain.FieldCourse] = i18n.T(locale, "err_course")
	}
	if r.Level == "" || !domain.IsKnownLevel(r.Level) {
		errs[domain.FieldLevel] = i18n.T(locale, "err_level")
	}
	if r.Schedule == "" || !domain.IsKnownSchedule(r.Schedule) {
		errs[domain.FieldSchedule] = i18n.T(locale, "err_schedule")
	}

	return errs
}

// IsSubmittable reports whether the record passes every field rule.
func IsSubmittable(r domain.RegistrationRecord) bool {
	return len(Validate(r)) == 0
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates request DTOs against their `validate` tags and reports
// failures keyed by JSON field name.
func Struct(s interface{}) domain.FieldErrors {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	errs := domain.FieldErrors{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["request"] = err.Error()
		return errs
	}
	for _, fe := range validationErrs {
		errs[fe.Field()] = describe(fe)
	}
	return errs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
