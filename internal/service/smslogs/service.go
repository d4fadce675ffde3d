package smslogs

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/service/smslogs/models"
)

// Service сервис чтения журнала SMS.
// Журнал append-only: записи создаются диспетчером уведомлений,
// здесь только чтение.
type Service struct {
	smsLogRepo SMSLogRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса журнала SMS
func NewService(smsLogRepo SMSLogRepository, logger Logger) *Service {
	return &Service{
		smsLogRepo: smsLogRepo,
		logger:     logger,
	}
}

// List получает журнал SMS (новые записи первыми)
func (s *Service) List(ctx context.Context) (*models.SMSLogListResponse, error) {
	entries, err := s.smsLogRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSMSLogList(entries), nil
}
