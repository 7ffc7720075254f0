// Package i18n provides internationalization support for the freight service.
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
		// Fallback to default locale
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

	// Parse Accept-Language header (e.g., "pt-BR,pt;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "pt" from "pt-BR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
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
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "User not registered",
			"error.email_not_confirmed":  "Email address not confirmed",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.upload.file_required": "A spreadsheet file is required",
			"error.upload.invalid_sheet": "The spreadsheet could not be read",
			"error.validation.pedidos":   "One or more order rows are invalid",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timed out",

			// Success messages
			"success.leilao_concluido": "Freight auction completed successfully",
			"success.upload_processed": "Spreadsheet processed successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.invalid_credentials":  "Usuário não registrado",
			"error.email_not_confirmed":  "Endereço de e-mail não confirmado",
			"error.api_key_required":     "Chave de API é obrigatória",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.forbidden":            "Proibido",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.conflict":             "Conflito",
			"error.upload.file_required": "Um arquivo de planilha é obrigatório",
			"error.upload.invalid_sheet": "A planilha não pôde ser lida",
			"error.validation.pedidos":   "Uma ou mais linhas de pedido são inválidas",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",
			"error.timeout":              "Tempo de requisição esgotado",

			// Success messages
			"success.leilao_concluido": "Leilão de frete concluído com sucesso",
			"success.upload_processed": "Planilha processada com sucesso",
		},
		"es": {
			// Error messages
			"error.invalid_request":      "Solicitud inválida",
			"error.invalid_request_body": "Cuerpo de la solicitud inválido",
			"error.internal_error":       "Se produjo un error inesperado",
			"error.unauthorized":         "No autorizado",
			"error.invalid_credentials":  "Usuario no registrado",
			"error.email_not_confirmed":  "Correo electrónico no confirmado",
			"error.api_key_required":     "Se requiere clave de API",
			"error.invalid_api_key":      "Clave de API inválida",
			"error.forbidden":            "Prohibido",
			"error.not_found":            "No encontrado",
			"error.rate_limit_exceeded":  "Demasiadas solicitudes, intente de nuevo más tarde",
			"error.conflict":             "Conflicto",
			"error.upload.file_required": "Se requiere un archivo de hoja de cálculo",
			"error.upload.invalid_sheet": "No se pudo leer la hoja de cálculo",
			"error.validation.pedidos":   "Una o más filas de pedido son inválidas",
			"error.invalid_token":        "Token inválido o expirado",
			"error.token_required":       "Se requiere token de autenticación",
			"error.timeout":              "Tiempo de solicitud agotado",

			// Success messages
			"success.leilao_concluido": "Subasta de flete completada con éxito",
			"success.upload_processed": "Hoja de cálculo procesada con éxito",
		},
	}
}
