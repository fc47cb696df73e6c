package contacts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sumitlokhande/portfolio/pkg/logging"
)

// Handler handles HTTP requests for contact submissions
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new contacts handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Response is the envelope every contacts endpoint replies with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Create handles POST /api/contacts requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	sub, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Message: "Invalid form data",
				Errors:  vErr.Fields,
			})
		case errors.Is(err, ErrDeliveryFailed):
			writeJSON(w, http.StatusInternalServerError, Response{
				Success: false,
				Message: "Failed to send email. Please try again.",
			})
		default:
			writeJSON(w, http.StatusInternalServerError, Response{
				Success: false,
				Message: "Failed to save your message. Please try again.",
			})
		}
		return
	}

	h.logger.Info("contact submission accepted", "id", sub.ID, "name", sub.Name)

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Email sent successfully! I'll get back to you soon.",
		Data:    sub,
	})
}

// List handles GET /api/contacts requests. Exposed without authentication
// for the owner's admin use; gate it upstream if the deployment needs to.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: "Failed to fetch contacts",
		})
		return
	}
	if subs == nil {
		subs = []*ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    subs,
	})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
