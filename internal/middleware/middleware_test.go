package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"altoque/internal/config"
	"altoque/internal/domain"
	"altoque/internal/dto"
	"altoque/internal/i18n"
	"altoque/internal/logger"
	"altoque/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.Locale())
	return app
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		acceptLanguage string
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "attempt not found",
			err:            domain.NewAttemptNotFoundError("01HGZ8VNRYXS8QKNJV5GRWPWDQ"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   string(domain.CodeAttemptNotFound),
			expectedMsg:    "Attempt not found with ID: 01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		},
		{
			name:           "graded attempt conflicts",
			err:            domain.NewAttemptGradedError("x"),
			expectedStatus: http.StatusConflict,
			expectedCode:   string(domain.CodeAttemptGraded),
			expectedMsg:    "Attempt x is already graded; retry it first",
		},
		{
			name:           "delivery failure is localized",
			err:            domain.NewDeliveryFailedError(errors.New("smtp down")),
			acceptLanguage: "es-ES,es;q=0.9",
			expectedStatus: http.StatusBadGateway,
			expectedCode:   string(domain.CodeDeliveryFailed),
			expectedMsg:    i18n.T(i18n.Spanish, "submit_err"),
		},
		{
			name:           "empty bank",
			err:            domain.NewNoQuestionsError(),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   string(domain.CodeNoQuestions),
			expectedMsg:    i18n.T(i18n.English, "no_questions"),
		},
		{
			name:           "missing configuration",
			err:            domain.NewConfigMissingError("SHEETDB_ENDPOINT"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   string(domain.CodeConfigMissing),
			expectedMsg:    "Missing SHEETDB_ENDPOINT",
		},
		{
			name:           "fiber error",
			err:            fiber.NewError(fiber.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedCode:   "HTTP_ERROR",
			expectedMsg:    "Request Entity Too Large",
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   string(domain.CodeInternal),
			expectedMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/fail", func(c *fiber.Ctx) error { return tt.err })

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body dto.ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedMsg, body.Message)
			assert.Equal(t, tt.expectedStatus, body.Status)
		})
	}
}

func TestErrorHandler_Details(t *testing.T) {
	app := newApp()
	app.Post("/relay", func(c *fiber.Ctx) error {
		return domain.NewUpstreamRejectedError(http.StatusTooManyRequests, "rate limited")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/relay", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "rate limited", body.Message)
	assert.EqualValues(t, http.StatusTooManyRequests, body.Details["upstream_status"])
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	app := newApp()
	app.Post("/form", func(c *fiber.Ctx) error {
		return domain.FieldErrors{domain.FieldEmail: "Enter a valid email."}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/form", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ValidationErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, string(domain.CodeValidation), body.Code)
	assert.Equal(t, map[string]string{"email": "Enter a valid email."}, body.Errors)
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		expected       string
	}{
		{name: "default", target: "/", expected: i18n.English},
		{name: "header", target: "/", acceptLanguage: "es-MX", expected: i18n.Spanish},
		{name: "query wins", target: "/?lang=en", acceptLanguage: "es", expected: i18n.English},
		{name: "unsupported", target: "/?lang=fr", expected: i18n.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/", func(c *fiber.Ctx) error { return c.SendString(middleware.LocaleFrom(c)) })

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.expected, string(body))
		})
	}
}

func TestAdminOnly(t *testing.T) {
	const secret = "test-secret"
	validToken, err := middleware.SignAdminToken(secret, "ops@altoque.ie", time.Hour)
	require.NoError(t, err)
	expiredToken, err := middleware.SignAdminToken(secret, "ops@altoque.ie", -time.Hour)
	require.NoError(t, err)
	otherSecretToken, err := middleware.SignAdminToken("other", "ops@altoque.ie", time.Hour)
	require.NoError(t, err)
	noRoleToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops@altoque.ie",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name           string
		secret         string
		authHeader     string
		expectedStatus int
	}{
		{name: "valid token", secret: secret, authHeader: "Bearer " + validToken, expectedStatus: http.StatusOK},
		{name: "missing header", secret: secret, expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", secret: secret, authHeader: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "expired", secret: secret, authHeader: "Bearer " + expiredToken, expectedStatus: http.StatusUnauthorized},
		{name: "wrong secret", secret: secret, authHeader: "Bearer " + otherSecretToken, expectedStatus: http.StatusUnauthorized},
		{name: "not an admin token", secret: secret, authHeader: "Bearer " + noRoleToken, expectedStatus: http.StatusUnauthorized},
		{name: "admin disabled", secret: "", authHeader: "Bearer " + validToken, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Post("/admin", middleware.AdminOnly(tt.secret), func(c *fiber.Ctx) error {
				return c.SendString(c.Locals(middleware.AdminSubjectKey).(string))
			})

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRequestLogger_KeepsErrorStatus(t *testing.T) {
	app := newApp()
	app.Use(middleware.RequestLogger())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.NewAttemptNotFoundError("x")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
