package adaptor

import (
	"net/http"

	"murray-moving/internal/dto/request"
	"murray-moving/internal/usecase"
	"murray-moving/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	service usecase.QuoteService
	log     *zap.Logger
}

func NewQuoteHandler(service usecase.QuoteService, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "quote")),
	}
}

// Create handles POST /api/quotes
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit quote")
		return
	}

	utils.ResponseCreated(w, quote)
}

// List handles GET /api/quotes
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list quotes")
		return
	}

	utils.ResponseSuccess(w, quotes)
}

// Get handles GET /api/quotes/{id}
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Quote request not found")
		return
	}

	quote, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get quote")
		return
	}

	utils.ResponseSuccess(w, quote)
}

// UpdateStatus handles PATCH /api/quotes/{id}
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Quote request not found")
		return
	}

	var req request.UpdateQuoteStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update quote status")
		return
	}

	utils.ResponseSuccess(w, quote)
}
