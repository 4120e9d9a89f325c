// Package i18n provides internationalization support for the cart service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.unauthorized":          "Unauthorized",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.invalid_token":         "Invalid or expired token",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.timeout":               "Request timeout",
			"error.validation.quantity":   "quantity: must be a positive integer",
			"error.validation.product_id": "product_id: must be a positive integer",
			"error.validation.unit_price": "unit_price: must not be negative",
		},
		"pt": {
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.unauthorized":          "Não autorizado",
			"error.api_key_required":      "Chave de API é obrigatória",
			"error.invalid_api_key":       "Chave de API inválida",
			"error.invalid_token":         "Token inválido ou expirado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.timeout":               "Tempo limite da requisição excedido",
			"error.validation.quantity":   "quantity: deve ser um inteiro positivo",
			"error.validation.product_id": "product_id: deve ser um inteiro positivo",
			"error.validation.unit_price": "unit_price: não pode ser negativo",
		},
	}
}
