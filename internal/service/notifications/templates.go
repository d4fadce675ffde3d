package notifications

import "strings"

// Template название шаблона SMS
type Template string

const (
	TemplateBookingConfirmation Template = "BOOKING_CONFIRMATION"
	TemplateEventReminder       Template = "EVENT_REMINDER"
	TemplateBookingCancellation Template = "BOOKING_CANCELLATION"
	TemplateCustomMessage       Template = "CUSTOM_MESSAGE"
)

// Тексты шаблонов. Плейсхолдеры вида {{name}} заменяются данными
// при рендеринге; плейсхолдер без данных остается в тексте как есть.
var templateTexts = map[Template]string{
	TemplateBookingConfirmation: "Hi {{customerName}}, your booking for {{eventName}} on {{eventDate}} has been confirmed. We look forward to seeing you!",
	TemplateEventReminder:       "Hi {{customerName}}, this is a reminder that {{eventName}} is scheduled for tomorrow at {{eventTime}}. We look forward to seeing you!",
	TemplateBookingCancellation: "Hi {{customerName}}, your booking for {{eventName}} on {{eventDate}} has been cancelled. Please contact us if you have any questions.",
	TemplateCustomMessage:       "{{customMessage}}",
}

// ParseTemplate проверяет, что строка является известным шаблоном
func ParseTemplate(s string) (Template, bool) {
	t := Template(s)
	_, ok := templateTexts[t]
	return t, ok
}

// Render подставляет данные в текст шаблона.
// Пустые значения не подставляются, нераспознанные плейсхолдеры
// остаются в тексте дословно.
func Render(templateText string, data map[string]string) string {
	result := templateText
	for key, value := range data {
		if value == "" {
			continue
		}
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
