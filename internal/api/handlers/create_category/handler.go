package create_category

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	"github.com/m04kA/SMC-EventsService/internal/service/categories"
	"github.com/m04kA/SMC-EventsService/internal/service/categories/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrInvalidInput):
			h.logger.Warn("POST /categories - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /categories - Failed to create category: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category created successfully: category_id=%d", category.ID)
	handlers.RespondJSON(w, http.StatusCreated, category)
}
