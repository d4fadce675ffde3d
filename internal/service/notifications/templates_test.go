package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	text := templateTexts[TemplateBookingConfirmation]

	got := Render(text, map[string]string{
		"customerName": "Jane Smith",
		"eventName":    "Summer Wedding",
		"eventDate":    "2025-06-15",
	})

	assert.Equal(t, "Hi Jane Smith, your booking for Summer Wedding on 2025-06-15 has been confirmed. We look forward to seeing you!", got)
}

func TestRender_Idempotent(t *testing.T) {
	text := templateTexts[TemplateEventReminder]
	data := map[string]string{
		"customerName": "John Doe",
		"eventName":    "Tech Conference",
		"eventTime":    "10:00",
	}

	first := Render(text, data)
	second := Render(text, data)
	assert.Equal(t, first, second)
}

func TestRender_UnresolvedPlaceholdersStayVerbatim(t *testing.T) {
	text := templateTexts[TemplateBookingConfirmation]

	got := Render(text, map[string]string{
		"customerName": "Jane Smith",
	})

	assert.Contains(t, got, "Hi Jane Smith")
	assert.Contains(t, got, "{{eventName}}")
	assert.Contains(t, got, "{{eventDate}}")
}

func TestRender_EmptyValueLeavesPlaceholder(t *testing.T) {
	got := Render("{{customMessage}}", map[string]string{"customMessage": ""})
	assert.Equal(t, "{{customMessage}}", got)
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	got := Render("{{name}} and {{name}}", map[string]string{"name": "Bob"})
	assert.Equal(t, "Bob and Bob", got)
}

func TestParseTemplate(t *testing.T) {
	for _, known := range []string{"BOOKING_CONFIRMATION", "EVENT_REMINDER", "BOOKING_CANCELLATION", "CUSTOM_MESSAGE"} {
		tmpl, ok := ParseTemplate(known)
		assert.True(t, ok, known)
		assert.Equal(t, Template(known), tmpl)
	}

	_, ok := ParseTemplate("PASSWORD_RESET")
	assert.False(t, ok)
}
