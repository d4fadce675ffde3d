package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	storecategory "github.com/m04kA/SMC-EventsService/internal/infra/storage/category"
)

// CategoryRepository in-memory реализация репозитория категорий мероприятий
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository создает репозиторий категорий поверх хранилища
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// Create создает новую категорию
func (r *CategoryRepository) Create(_ context.Context, category *domain.EventCategory) (*domain.EventCategory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextCategoryID++
	category.ID = r.store.nextCategoryID
	category.CreatedAt = nowFn()
	r.store.categories[category.ID] = cloneCategory(category)

	return category, nil
}

// GetByID получает категорию по ID
func (r *CategoryRepository) GetByID(_ context.Context, id int64) (*domain.EventCategory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	category, ok := r.store.categories[id]
	if !ok {
		return nil, storecategory.ErrCategoryNotFound
	}

	return cloneCategory(category), nil
}

// List получает все категории, отсортированные по названию
func (r *CategoryRepository) List(_ context.Context) ([]*domain.EventCategory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := make([]*domain.EventCategory, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		categories = append(categories, cloneCategory(c))
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	return categories, nil
}

// Update обновляет категорию
func (r *CategoryRepository) Update(_ context.Context, id int64, category *domain.EventCategory) (*domain.EventCategory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.categories[id]
	if !ok {
		return nil, storecategory.ErrCategoryNotFound
	}

	category.ID = id
	category.CreatedAt = existing.CreatedAt
	r.store.categories[id] = cloneCategory(category)

	return category, nil
}

// Delete удаляет категорию
func (r *CategoryRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[id]; !ok {
		return storecategory.ErrCategoryNotFound
	}

	delete(r.store.categories, id)
	return nil
}
