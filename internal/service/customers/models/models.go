package models

import (
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// Request модели

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	MobileNumber string  `json:"mobileNumber"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateCustomerRequest запрос на обновление клиента
type UpdateCustomerRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	MobileNumber string  `json:"mobileNumber"`
	Notes        *string `json:"notes,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateCustomerRequest) ToDomain() *domain.Customer {
	return &domain.Customer{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		MobileNumber: r.MobileNumber,
		Notes:        r.Notes,
	}
}

// ToDomain конвертирует request в domain модель
func (r *UpdateCustomerRequest) ToDomain() *domain.Customer {
	return &domain.Customer{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		MobileNumber: r.MobileNumber,
		Notes:        r.Notes,
	}
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	MobileNumber string    `json:"mobileNumber"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		MobileNumber: c.MobileNumber,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, *FromDomainCustomer(c))
	}
	return resp
}
