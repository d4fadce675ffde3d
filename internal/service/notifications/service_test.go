package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/internal/integrations/twilio"
)

type fakeSMSClient struct {
	configured bool
	sid        string
	sendErr    error
	healthErr  error
	count      int

	sentTo   []string
	sentBody []string
}

func (c *fakeSMSClient) IsConfigured() bool { return c.configured }

func (c *fakeSMSClient) SendMessage(_ context.Context, to, body string) (*twilio.SendResult, error) {
	c.sentTo = append(c.sentTo, to)
	c.sentBody = append(c.sentBody, body)
	if c.sendErr != nil {
		return nil, c.sendErr
	}
	return &twilio.SendResult{SID: c.sid}, nil
}

func (c *fakeSMSClient) CheckHealth(_ context.Context) (*twilio.HealthResult, error) {
	if c.healthErr != nil {
		return nil, c.healthErr
	}
	return &twilio.HealthResult{Count: c.count}, nil
}

type fakeSMSLogRepo struct {
	entries   []*domain.SMSLog
	insertErr error
}

func (r *fakeSMSLogRepo) Insert(_ context.Context, entry *domain.SMSLog) (*domain.SMSLog, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	copied := *entry
	r.entries = append(r.entries, &copied)
	return entry, nil
}

type fakeMetrics struct {
	attempts map[string]int
}

func (m *fakeMetrics) ObserveSMSAttempt(template string, success bool) {
	if m.attempts == nil {
		m.attempts = make(map[string]int)
	}
	m.attempts[template]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(client *fakeSMSClient, logs *fakeSMSLogRepo) *Service {
	return NewService(client, logs, &fakeMetrics{}, nopLogger{}, "+44", "07")
}

func TestService_Send_Success(t *testing.T) {
	client := &fakeSMSClient{configured: true, sid: "SM42"}
	logs := &fakeSMSLogRepo{}
	svc := newTestService(client, logs)

	result := svc.Send(context.Background(), "07911123456", TemplateBookingConfirmation, map[string]string{
		"customerName": "Jane Smith",
		"eventName":    "Summer Wedding",
		"eventDate":    "2025-06-15",
	})

	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "SM42")

	// Номер нормализован перед отправкой
	require.Len(t, client.sentTo, 1)
	assert.Equal(t, "+447911123456", client.sentTo[0])
	assert.Contains(t, client.sentBody[0], "Jane Smith")

	// Ровно одна запись журнала, с исходным номером
	require.Len(t, logs.entries, 1)
	assert.Equal(t, "07911123456", logs.entries[0].PhoneNumber)
	assert.True(t, logs.entries[0].Success)
	assert.Nil(t, logs.entries[0].ErrorMessage)
}

func TestService_Send_RelayFailure(t *testing.T) {
	client := &fakeSMSClient{configured: true, sendErr: errors.New("connection refused")}
	logs := &fakeSMSLogRepo{}
	svc := newTestService(client, logs)

	result := svc.Send(context.Background(), "+447911123456", TemplateBookingCancellation, map[string]string{
		"customerName": "Jane Doe",
		"eventName":    "Tech Summit",
		"eventDate":    "2025-03-01",
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Failed to send SMS")

	require.Len(t, logs.entries, 1)
	assert.False(t, logs.entries[0].Success)
	require.NotNil(t, logs.entries[0].ErrorMessage)
	assert.Contains(t, *logs.entries[0].ErrorMessage, "connection refused")
	assert.Contains(t, logs.entries[0].MessageBody, "Jane Doe")
	assert.Contains(t, logs.entries[0].MessageBody, "Tech Summit")
}

func TestService_Send_NotConfigured(t *testing.T) {
	client := &fakeSMSClient{configured: false}
	logs := &fakeSMSLogRepo{}
	svc := newTestService(client, logs)

	result := svc.Send(context.Background(), "07911123456", TemplateCustomMessage, map[string]string{
		"customMessage": "hello",
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not configured")

	// Клиент не вызывался, но запись журнала все равно одна
	assert.Empty(t, client.sentTo)
	require.Len(t, logs.entries, 1)
	assert.False(t, logs.entries[0].Success)
}

func TestService_Send_UnknownTemplate(t *testing.T) {
	client := &fakeSMSClient{configured: true, sid: "SM1"}
	logs := &fakeSMSLogRepo{}
	svc := newTestService(client, logs)

	result := svc.Send(context.Background(), "07911123456", Template("PASSWORD_RESET"), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Unknown SMS template")
	assert.Empty(t, client.sentTo)
	require.Len(t, logs.entries, 1)
}

func TestService_Send_LogInsertFailureDoesNotChangeResult(t *testing.T) {
	client := &fakeSMSClient{configured: true, sid: "SM7"}
	logs := &fakeSMSLogRepo{insertErr: errors.New("disk full")}
	svc := newTestService(client, logs)

	result := svc.Send(context.Background(), "+447911123456", TemplateCustomMessage, map[string]string{
		"customMessage": "hello",
	})

	assert.True(t, result.Success)
}

func TestService_SendBookingConfirmation(t *testing.T) {
	client := &fakeSMSClient{configured: true, sid: "SM2"}
	logs := &fakeSMSLogRepo{}
	svc := newTestService(client, logs)

	customer := &domain.Customer{FirstName: "John", LastName: "Doe", MobileNumber: "07911123456"}

	result := svc.SendBookingConfirmation(context.Background(), customer, "Tech Conference", "2025-06-20")

	assert.True(t, result.Success)
	require.Len(t, client.sentBody, 1)
	assert.Equal(t, "Hi John Doe, your booking for Tech Conference on 2025-06-20 has been confirmed. We look forward to seeing you!", client.sentBody[0])
}

func TestService_SendEventReminder(t *testing.T) {
	client := &fakeSMSClient{configured: true, sid: "SM3"}
	logs := &fakeSMSLogRepo{}
	svc := newTestService(client, logs)

	customer := &domain.Customer{FirstName: "Emily", LastName: "Williams", MobileNumber: "+447911123456"}

	result := svc.SendEventReminder(context.Background(), customer, "Birthday Party", "18:00")

	assert.True(t, result.Success)
	require.Len(t, client.sentBody, 1)
	assert.Equal(t, "Hi Emily Williams, this is a reminder that Birthday Party is scheduled for tomorrow at 18:00. We look forward to seeing you!", client.sentBody[0])
}

func TestService_CheckHealth(t *testing.T) {
	t.Run("configured and reachable", func(t *testing.T) {
		client := &fakeSMSClient{configured: true, count: 1}
		svc := newTestService(client, &fakeSMSLogRepo{})

		result := svc.CheckHealth(context.Background())
		assert.True(t, result.Success)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("not configured", func(t *testing.T) {
		client := &fakeSMSClient{configured: false}
		svc := newTestService(client, &fakeSMSLogRepo{})

		result := svc.CheckHealth(context.Background())
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "not configured")
	})

	t.Run("provider error", func(t *testing.T) {
		client := &fakeSMSClient{configured: true, healthErr: errors.New("401 unauthorized")}
		svc := newTestService(client, &fakeSMSLogRepo{})

		result := svc.CheckHealth(context.Background())
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "connection error")
	})
}
