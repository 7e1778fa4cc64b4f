// Package i18n provides internationalization support for the shipment service.
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
// Falls back to DefaultLocale if the locale is not found, and to the key
// itself if no message exists.
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
			// Error messages
			"error.invalid_request":             "Invalid request",
			"error.invalid_request_body":        "Invalid request body",
			"error.internal_error":              "An unexpected error occurred",
			"error.unauthorized":                "Unauthorized",
			"error.api_key_required":            "API key is required",
			"error.invalid_api_key":             "Invalid API key",
			"error.forbidden":                   "Forbidden",
			"error.not_found":                   "Not found",
			"error.rate_limit_exceeded":         "Too many requests, please try again later",
			"error.conflict":                    "Conflict",
			"error.timeout":                     "Request timed out",
			"error.invalid_token":               "Invalid or expired token",
			"error.token_required":              "Authentication token is required",
			"error.validation.items_required":   "items: at least one item is required",
			"error.validation.quantity":         "quantity: must be a positive integer",
			"error.validation.unit_weight":      "unit_weight_grams: must not be negative",
			"error.validation.packets_per_unit": "packets_per_unit: must not be negative",
			"error.validation.box_catalog":      "boxes: weight and packet ceilings must be strictly ascending",
			"error.catalog_not_found":           "No active box catalog configuration found",

			// Success messages
			"success.shipment_calculated": "Shipment weight calculation completed successfully",
			"success.catalog_updated":     "Box catalog updated successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":             "Requisição inválida",
			"error.invalid_request_body":        "Corpo da requisição inválido",
			"error.internal_error":              "Ocorreu um erro inesperado",
			"error.unauthorized":                "Não autorizado",
			"error.api_key_required":            "Chave de API é obrigatória",
			"error.invalid_api_key":             "Chave de API inválida",
			"error.forbidden":                   "Proibido",
			"error.not_found":                   "Não encontrado",
			"error.rate_limit_exceeded":         "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                    "Conflito",
			"error.timeout":                     "Tempo limite da requisição excedido",
			"error.invalid_token":               "Token inválido ou expirado",
			"error.token_required":              "Token de autenticação é obrigatório",
			"error.validation.items_required":   "items: pelo menos um item é obrigatório",
			"error.validation.quantity":         "quantity: deve ser um inteiro positivo",
			"error.validation.unit_weight":      "unit_weight_grams: não pode ser negativo",
			"error.validation.packets_per_unit": "packets_per_unit: não pode ser negativo",
			"error.validation.box_catalog":      "boxes: limites de peso e pacotes devem ser estritamente crescentes",
			"error.catalog_not_found":           "Nenhuma configuração ativa de catálogo de caixas encontrada",

			// Success messages
			"success.shipment_calculated": "Cálculo de peso do envio concluído com sucesso",
			"success.catalog_updated":     "Catálogo de caixas atualizado com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":             "Ongeldig verzoek",
			"error.invalid_request_body":        "Ongeldige aanvraag body",
			"error.internal_error":              "Er is een onverwachte fout opgetreden",
			"error.unauthorized":                "Niet geautoriseerd",
			"error.api_key_required":            "API-sleutel is vereist",
			"error.invalid_api_key":             "Ongeldige API-sleutel",
			"error.forbidden":                   "Verboden",
			"error.not_found":                   "Niet gevonden",
			"error.rate_limit_exceeded":         "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                    "Conflict",
			"error.timeout":                     "Verzoek verlopen",
			"error.invalid_token":               "Ongeldig of verlopen token",
			"error.token_required":              "Authenticatietoken is vereist",
			"error.validation.items_required":   "items: minstens één artikel is vereist",
			"error.validation.quantity":         "quantity: moet een positief geheel getal zijn",
			"error.validation.unit_weight":      "unit_weight_grams: mag niet negatief zijn",
			"error.validation.packets_per_unit": "packets_per_unit: mag niet negatief zijn",
			"error.validation.box_catalog":      "boxes: gewichts- en pakketlimieten moeten strikt oplopend zijn",
			"error.catalog_not_found":           "Geen actieve doosconfiguratie gevonden",

			// Success messages
			"success.shipment_calculated": "Berekening van verzendgewicht succesvol voltooid",
			"success.catalog_updated":     "Dooscatalogus succesvol bijgewerkt",
		},
	}
}
