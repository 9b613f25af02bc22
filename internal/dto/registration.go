package dto

import "altoque/internal/domain"

// RegistrationRequest is the sign-up form body.
// @Description Sign-up form
type RegistrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Course   string `json:"course"`
	Level    string `json:"level"`
	Schedule string `json:"schedule"`
	Message  string `json:"message"`
}

// ToRecord converts the request into an unsanitized record.
func (r RegistrationRequest) ToRecord() domain.RegistrationRecord {
	return domain.RegistrationRecord{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Course:   r.Course,
		Level:    r.Level,
		Schedule: r.Schedule,
		Message:  r.Message,
	}
}

// RegistrationResponse confirms delivery.
type RegistrationResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ValidateResponse reports per-field errors without submitting.
type ValidateResponse struct {
	Errors      domain.FieldErrors `json:"errors"`
	Submittable bool               `json:"submittable"`
}

// PrefillResponse carries sanitized query-string values for the form.
type PrefillResponse struct {
	Schedule string `json:"schedule"`
	Course   string `json:"course"`
}

// SheetRelayRequest is the body of the raw sheet relay.
type SheetRelayRequest struct {
	Data []map[string]interface{} `json:"data"`
}
