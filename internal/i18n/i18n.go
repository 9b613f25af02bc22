// Package i18n resolves the request locale and holds the server-side strings
// the API returns to the site (validation and submission messages).
package i18n

import (
	"golang.org/x/text/language"
)

const (
	English = "en"
	Spanish = "es"

	DefaultLocale = English
)

var (
	supported = []language.Tag{language.English, language.Spanish}
	codes     = []string{English, Spanish}
	matcher   = language.NewMatcher(supported)
)

var translations = map[string]map[string]string{
	English: {
		"err_name":        "Please enter your full name.",
		"err_email":       "Enter a valid email.",
		"err_phone":       "Phone must be Irish format.",
		"err_course":      "Select a course.",
		"err_level":       "Select your level.",
		"err_schedule":    "Choose a schedule.",
		"submit_err":      "Error submitting the form, try again.",
		"success":         "Sent!",
		"no_questions":    "No questions available.",
		"level_reco_low":  "We recommend starting with our beginner group (A1/A2).",
		"level_reco_mid":  "An intermediate group (B1) is a good fit for you.",
		"level_reco_high": "You are ready for an upper-intermediate or advanced group (B2+).",
	},
	Spanish: {
		"err_name":        "Introduce tu nombre completo.",
		"err_email":       "Introduce un email válido.",
		"err_phone":       "El teléfono debe tener formato irlandés.",
		"err_course":      "Selecciona un curso.",
		"err_level":       "Selecciona tu nivel.",
		"err_schedule":    "Elige un horario.",
		"submit_err":      "Error al enviar el formulario, inténtalo de nuevo.",
		"success":         "¡Enviado!",
		"no_questions":    "No hay preguntas disponibles.",
		"level_reco_low":  "Te recomendamos empezar en nuestro grupo inicial (A1/A2).",
		"level_reco_mid":  "Un grupo intermedio (B1) es ideal para ti.",
		"level_reco_high": "Estás listo para un grupo intermedio alto o avanzado (B2+).",
	},
}

// Detect picks the locale from an explicit lang parameter first, then the
// Accept-Language header, falling back to English.
func Detect(queryLang, acceptLanguage string) string {
	if queryLang != "" {
		if tag, err := language.Parse(queryLang); err == nil {
			if code, ok := match(tag); ok {
				return code
			}
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if code, ok := match(tags...); ok {
				return code
			}
		}
	}
	return DefaultLocale
}

func match(tags ...language.Tag) (string, bool) {
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return codes[idx], true
}

// T returns the translated string for key in locale; falls back to English,
// then to the key itself.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[DefaultLocale][key]; ok {
		return v
	}
	return key
}
