package domain

import (
	"regexp"
	"strings"
)

// Registration form field names, shared by validation errors and delivery payloads.
const (
	FieldTimestamp = "timestamp"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldCourse    = "course"
	FieldLevel     = "level"
	FieldSchedule  = "schedule"
	FieldMessage   = "message"
)

// RegistrationRecord is one sign-up form submission.
type RegistrationRecord struct {
	Timestamp string `json:"timestamp,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Course    string `json:"course"`
	Level     string `json:"level"`
	Schedule  string `json:"schedule"`
	Message   string `json:"message"`
}

// Fields flattens the record into the key/value shape the email and sheet
// collaborators accept.
func (r RegistrationRecord) Fields() map[string]string {
	return map[string]string{
		FieldTimestamp: r.Timestamp,
		FieldName:      r.Name,
		FieldEmail:     r.Email,
		FieldPhone:     r.Phone,
		FieldCourse:    r.Course,
		FieldLevel:     r.Level,
		FieldSchedule:  r.Schedule,
		FieldMessage:   r.Message,
	}
}

var (
	Courses = []string{
		"Junior Cert Spanish",
		"Leaving Cert Spanish",
		"Conversation & Culture",
	}

	Levels = []string{
		"Beginner",
		"Intermediate",
		"Advanced",
		"Not sure",
	}

	// Labels the public form has historically submitted for the first three levels.
	levelAliases = map[string]string{
		"Beginner (A1/A2)":     "Beginner",
		"Intermediate (B1/B2)": "Intermediate",
		"Advanced (C1/C2)":     "Advanced",
	}

	ScheduleOptions = []string{
		"Morning",
		"Afternoon",
		"Evening",
		"Flexible",
	}

	// Slot labels produced by the schedule page, e.g. "Tuesday 17:30".
	slotLabelPattern = regexp.MustCompile(`^(Monday|Tuesday|Wednesday|Thursday|Friday) \S.*$`)
)

func IsKnownCourse(course string) bool {
	return contains(Courses, course)
}

// CanonicalCourse returns the listed spelling of course, or "" when the
// course is not offered.
func CanonicalCourse(course string) string {
	for _, c := range Courses {
		if strings.EqualFold(c, course) {
			return c
		}
	}
	return ""
}

func IsKnownLevel(level string) bool {
	if _, ok := levelAliases[level]; ok {
		return true
	}
	return contains(Levels, level)
}

// CanonicalLevel maps a level alias to its short label.
func CanonicalLevel(level string) string {
	if canonical, ok := levelAliases[level]; ok {
		return canonical
	}
	return level
}

func IsKnownSchedule(schedule string) bool {
	return contains(ScheduleOptions, schedule) || slotLabelPattern.MatchString(schedule)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}
