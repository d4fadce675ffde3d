package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	storecustomer "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
)

// CustomerRepository in-memory реализация репозитория клиентов
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository создает репозиторий клиентов поверх хранилища
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// Create создает нового клиента
func (r *CustomerRepository) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextCustomerID++
	customer.ID = r.store.nextCustomerID
	customer.CreatedAt = nowFn()
	r.store.customers[customer.ID] = cloneCustomer(customer)

	return customer, nil
}

// GetByID получает клиента по ID
func (r *CustomerRepository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customer, ok := r.store.customers[id]
	if !ok {
		return nil, storecustomer.ErrCustomerNotFound
	}

	return cloneCustomer(customer), nil
}

// List получает всех клиентов, отсортированных по фамилии и имени
func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customers := make([]*domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		customers = append(customers, cloneCustomer(c))
	}

	sort.Slice(customers, func(i, j int) bool {
		if customers[i].LastName != customers[j].LastName {
			return customers[i].LastName < customers[j].LastName
		}
		return customers[i].FirstName < customers[j].FirstName
	})

	return customers, nil
}

// Update обновляет данные клиента
func (r *CustomerRepository) Update(_ context.Context, id int64, customer *domain.Customer) (*domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.customers[id]
	if !ok {
		return nil, storecustomer.ErrCustomerNotFound
	}

	customer.ID = id
	customer.CreatedAt = existing.CreatedAt
	r.store.customers[id] = cloneCustomer(customer)

	return customer, nil
}

// Delete удаляет клиента
func (r *CustomerRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[id]; !ok {
		return storecustomer.ErrCustomerNotFound
	}

	delete(r.store.customers, id)
	return nil
}
