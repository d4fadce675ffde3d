package smslog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-EventsService/pkg/psqlbuilder"
)

// Repository репозиторий журнала SMS.
// Журнал append-only: записи создаются по одной на попытку отправки
// и никогда не изменяются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала SMS
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert добавляет запись о попытке отправки SMS
func (r *Repository) Insert(ctx context.Context, entry *domain.SMSLog) (*domain.SMSLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sms_logs").
		Columns("phone_number", "message_body", "success", "error_message").
		Values(entry.PhoneNumber, entry.MessageBody, entry.Success, entry.ErrorMessage).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return entry, nil
}

// List получает журнал SMS (новые записи первыми)
func (r *Repository) List(ctx context.Context) ([]*domain.SMSLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "phone_number", "message_body", "success", "error_message", "created_at",
	).
		From("sms_logs").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.SMSLog, 0)
	for rows.Next() {
		var entry domain.SMSLog
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.PhoneNumber,
			&entry.MessageBody,
			&entry.Success,
			&entry.ErrorMessage,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
