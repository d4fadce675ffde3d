package memstore

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// SMSLogRepository in-memory реализация журнала SMS.
// Журнал append-only: только вставка и чтение.
type SMSLogRepository struct {
	store *Store
}

// NewSMSLogRepository создает репозиторий журнала SMS поверх хранилища
func NewSMSLogRepository(store *Store) *SMSLogRepository {
	return &SMSLogRepository{store: store}
}

// Insert добавляет запись о попытке отправки SMS
func (r *SMSLogRepository) Insert(_ context.Context, entry *domain.SMSLog) (*domain.SMSLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextSMSLogID++
	entry.ID = r.store.nextSMSLogID
	entry.CreatedAt = nowFn()
	r.store.smsLogs = append(r.store.smsLogs, cloneSMSLog(entry))

	return entry, nil
}

// List получает журнал SMS (новые записи первыми)
func (r *SMSLogRepository) List(_ context.Context) ([]*domain.SMSLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]*domain.SMSLog, 0, len(r.store.smsLogs))
	for i := len(r.store.smsLogs) - 1; i >= 0; i-- {
		entries = append(entries, cloneSMSLog(r.store.smsLogs[i]))
	}

	return entries, nil
}
