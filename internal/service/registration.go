package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"altoque/internal/adapter/sheetdb"
	"altoque/internal/domain"
	"altoque/internal/logger"
	"altoque/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RegistrationService validates sign-ups and hands them to the email and
// sheet collaborators.
type RegistrationService interface {
	// Validate sanitizes then checks rec, reporting messages in locale.
	Validate(rec domain.RegistrationRecord, locale string) domain.FieldErrors
	// Submit returns domain.FieldErrors when rec is invalid and a
	// DELIVERY_FAILED error when either collaborator fails.
	Submit(ctx context.Context, rec domain.RegistrationRecord, locale string) (*domain.RegistrationRecord, error)
	Prefill(slot, course string) domain.RegistrationRecord
	// RelayRows sanitizes arbitrary rows and appends them to the
	// registrations sheet, returning the upstream body.
	RelayRows(ctx context.Context, rows []map[string]interface{}) ([]byte, error)
}

type registrationService struct {
	email    domain.EmailSender
	sheet    domain.SheetWriter
	endpoint string
	now      func() time.Time
}

func NewRegistrationService(email domain.EmailSender, sheet domain.SheetWriter, endpoint string) RegistrationService {
	return &registrationService{
		email:    email,
		sheet:    sheet,
		endpoint: endpoint,
		now:      time.Now,
	}
}

func (s *registrationService) Validate(rec domain.RegistrationRecord, locale string) domain.FieldErrors {
	return validation.ValidateLocalized(validation.SanitizeRecord(rec), locale)
}

func (s *registrationService) Submit(ctx context.Context, rec domain.RegistrationRecord, locale string) (*domain.RegistrationRecord, error) {
	clean := validation.SanitizeRecord(rec)
	if errs := validation.ValidateLocalized(clean, locale); len(errs) > 0 {
		return nil, errs
	}
	clean.Level = domain.CanonicalLevel(clean.Level)
	clean.Timestamp = s.now().UTC().Format(time.RFC3339)
	fields := clean.Fields()

	// Both collaborators are always attempted; a plain Group does not cancel
	// the other leg when one fails.
	var g errgroup.Group
	g.Go(func() error {
		if err := s.email.Send(ctx, fields); err != nil {
			logger.Get().Error("Registration email failed", zap.String("email", clean.Email), zap.Error(err))
			return fmt.Errorf("email delivery: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if s.endpoint == "" {
			return domain.NewConfigMissingError("SHEETDB_ENDPOINT")
		}
		if _, err := s.sheet.AppendRows(ctx, s.endpoint, []map[string]string{fields}); err != nil {
			logger.Get().Error("Registration row append failed", zap.String("email", clean.Email), zap.Error(err))
			return fmt.Errorf("sheet delivery: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewDeliveryFailedError(err)
	}

	logger.Get().Info("Registration delivered",
		zap.String("course", clean.Course),
		zap.String("level", clean.Level),
		zap.String("schedule", clean.Schedule))
	return &clean, nil
}

// Prefill sanitizes the slot and course query values the schedule page links
// with. A course that is not offered is dropped so the form never starts from
// a value it would reject.
func (s *registrationService) Prefill(slot, course string) domain.RegistrationRecord {
	clean := validation.Sanitize(course)
	canonical := domain.CanonicalCourse(clean)
	if canonical == "" && clean != "" {
		logger.Get().Warn("Dropping unknown prefill course", zap.String("course", clean))
	}
	return domain.RegistrationRecord{
		Schedule: validation.Sanitize(slot),
		Course:   canonical,
	}
}

func (s *registrationService) RelayRows(ctx context.Context, rows []map[string]interface{}) ([]byte, error) {
	if s.endpoint == "" {
		return nil, domain.NewConfigMissingError("SHEETDB_ENDPOINT")
	}
	if len(rows) == 0 {
		return nil, domain.NewInvalidInputError("Invalid payload: { data: [...] } required")
	}

	safe := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		clean := make(map[string]string, len(row))
		for k, v := range row {
			clean[k] = validation.SanitizeValue(v)
		}
		safe = append(safe, clean)
	}

	body, err := s.sheet.AppendRows(ctx, s.endpoint, safe)
	if err != nil {
		var statusErr *sheetdb.StatusError
		if errors.As(err, &statusErr) {
			logger.Get().Warn("Sheet relay rejected upstream",
				zap.Int("status", statusErr.StatusCode),
				zap.String("body", statusErr.Body))
			return nil, domain.NewUpstreamRejectedError(statusErr.StatusCode, statusErr.Body)
		}
		return nil, domain.NewUpstreamFailedError(err)
	}
	logger.Get().Debug("Sheet relay appended rows", zap.Int("rows", len(safe)))
	return body, nil
}
