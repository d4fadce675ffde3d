package memstore

import (
	"context"
	"sync"
)

// TxManager эквивалент менеджера транзакций для mock-режима.
// Настоящих транзакций в памяти нет; вместо этого все "транзакционные"
// операции сериализуются общим мьютексом. Для сценария
// read-check-write (проверка вместимости перед записью бронирования)
// этого достаточно: два конкурентных создания не могут проверить
// вместимость одновременно.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает менеджер транзакций для in-memory хранилища
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn, сериализуя её с другими транзакциями
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn, сериализуя её с другими транзакциями
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn, сериализуя её с другими транзакциями
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
