package adaptor

import (
	"net/http"

	"murray-moving/internal/dto/request"
	"murray-moving/internal/usecase"
	"murray-moving/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Create handles POST /api/contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	submission, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, submission)
}

// List handles GET /api/contact
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list contacts")
		return
	}

	utils.ResponseSuccess(w, submissions)
}

// Get handles GET /api/contact/{id}
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Contact submission not found")
		return
	}

	submission, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get contact")
		return
	}

	utils.ResponseSuccess(w, submission)
}

// UpdateRead handles PATCH /api/contact/{id}
func (h *ContactHandler) UpdateRead(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Contact submission not found")
		return
	}

	var req request.UpdateContactReadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	submission, err := h.service.SetRead(r.Context(), id, req.IsRead)
	if err != nil {
		handleServiceError(w, h.log, err, "update contact")
		return
	}

	utils.ResponseSuccess(w, submission)
}
