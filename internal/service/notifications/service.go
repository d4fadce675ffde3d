package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/internal/service/notifications/models"
)

// Service диспетчер SMS-уведомлений.
// Каждая попытка отправки, удачная или нет, оставляет ровно одну
// запись в журнале SMS. Ошибки отправки не возвращаются наружу:
// сбой уведомления не должен ломать операцию, которая его вызвала.
type Service struct {
	client      SMSClient
	smsLogRepo  SMSLogRepository
	metrics     Metrics
	logger      Logger
	countryCode string
	trunkPrefix string
}

// NewService создает новый экземпляр диспетчера уведомлений
func NewService(
	client SMSClient,
	smsLogRepo SMSLogRepository,
	metrics Metrics,
	logger Logger,
	countryCode string,
	trunkPrefix string,
) *Service {
	return &Service{
		client:      client,
		smsLogRepo:  smsLogRepo,
		metrics:     metrics,
		logger:      logger,
		countryCode: countryCode,
		trunkPrefix: trunkPrefix,
	}
}

// Send рендерит шаблон, нормализует номер и отправляет SMS.
// В журнал пишется исходный (ненормализованный) номер получателя.
func (s *Service) Send(ctx context.Context, phoneNumber string, template Template, data map[string]string) *models.SendResult {
	templateText, ok := templateTexts[template]
	if !ok {
		s.logger.Warn("Send: unknown template %q for number=%s", template, phoneNumber)
		s.writeLog(ctx, phoneNumber, string(template), false, fmt.Sprintf("unknown SMS template: %s", template))
		s.metrics.ObserveSMSAttempt(string(template), false)
		return &models.SendResult{Success: false, Message: fmt.Sprintf("Unknown SMS template: %s", template)}
	}

	messageBody := Render(templateText, data)
	formatted := FormatPhoneNumber(phoneNumber, s.countryCode, s.trunkPrefix)

	if !s.client.IsConfigured() {
		s.logger.Error("Send: SMS client is not configured, number=%s, template=%s", formatted, template)
		s.writeLog(ctx, phoneNumber, messageBody, false, "SMS service is not configured")
		s.metrics.ObserveSMSAttempt(string(template), false)
		return &models.SendResult{
			Success: false,
			Message: "SMS service is not configured. Please set up Twilio credentials.",
		}
	}

	s.logger.Info("Send: sending SMS to=%s, template=%s", formatted, template)

	result, err := s.client.SendMessage(ctx, formatted, messageBody)
	if err != nil {
		s.logger.Error("Send: failed to send SMS to=%s, template=%s: %v", formatted, template, err)
		s.writeLog(ctx, phoneNumber, messageBody, false, err.Error())
		s.metrics.ObserveSMSAttempt(string(template), false)
		return &models.SendResult{
			Success: false,
			Message: fmt.Sprintf("Failed to send SMS: %v", err),
		}
	}

	s.logger.Info("Send: SMS sent to=%s, sid=%s", formatted, result.SID)
	s.writeLog(ctx, phoneNumber, messageBody, true, "")
	s.metrics.ObserveSMSAttempt(string(template), true)
	return &models.SendResult{
		Success: true,
		Message: fmt.Sprintf("SMS sent successfully. Message SID: %s", result.SID),
	}
}

// SendBookingConfirmation отправляет подтверждение бронирования
func (s *Service) SendBookingConfirmation(ctx context.Context, customer *domain.Customer, eventName, eventDate string) *models.SendResult {
	return s.Send(ctx, customer.MobileNumber, TemplateBookingConfirmation, map[string]string{
		"customerName": customer.FullName(),
		"eventName":    eventName,
		"eventDate":    eventDate,
	})
}

// SendEventReminder отправляет напоминание о мероприятии
func (s *Service) SendEventReminder(ctx context.Context, customer *domain.Customer, eventName, eventTime string) *models.SendResult {
	return s.Send(ctx, customer.MobileNumber, TemplateEventReminder, map[string]string{
		"customerName": customer.FullName(),
		"eventName":    eventName,
		"eventTime":    eventTime,
	})
}

// SendBookingCancellation отправляет уведомление об отмене бронирования
func (s *Service) SendBookingCancellation(ctx context.Context, customer *domain.Customer, eventName, eventDate string) *models.SendResult {
	return s.Send(ctx, customer.MobileNumber, TemplateBookingCancellation, map[string]string{
		"customerName": customer.FullName(),
		"eventName":    eventName,
		"eventDate":    eventDate,
	})
}

// SendCustomMessage отправляет произвольное сообщение
func (s *Service) SendCustomMessage(ctx context.Context, customer *domain.Customer, message string) *models.SendResult {
	return s.Send(ctx, customer.MobileNumber, TemplateCustomMessage, map[string]string{
		"customMessage": message,
	})
}

// CheckHealth проверяет подключение к SMS-провайдеру
func (s *Service) CheckHealth(ctx context.Context) *models.HealthResult {
	if !s.client.IsConfigured() {
		return &models.HealthResult{
			Success: false,
			Message: "SMS service is not configured. Please set up Twilio credentials.",
		}
	}

	health, err := s.client.CheckHealth(ctx)
	if err != nil {
		s.logger.Error("CheckHealth: provider check failed: %v", err)
		return &models.HealthResult{
			Success: false,
			Message: fmt.Sprintf("SMS provider connection error: %v", err),
		}
	}

	return &models.HealthResult{
		Success: true,
		Message: "SMS provider connection verified successfully.",
		Count:   health.Count,
	}
}

// writeLog пишет запись журнала о попытке отправки.
// Ошибка записи журнала логируется, но не влияет на результат отправки.
func (s *Service) writeLog(ctx context.Context, phoneNumber, messageBody string, success bool, errorMessage string) {
	entry := &domain.SMSLog{
		PhoneNumber: phoneNumber,
		MessageBody: messageBody,
		Success:     success,
	}
	if errorMessage != "" {
		entry.ErrorMessage = &errorMessage
	}

	if _, err := s.smsLogRepo.Insert(ctx, entry); err != nil {
		s.logger.Error("writeLog: failed to insert SMS log entry for number=%s: %v", phoneNumber, err)
	}
}
