package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/application/services"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	apperrors "github.com/makjesusfreak-ai/ReactWebApp99/pkg/errors"
)

// AilmentService defines the aggregate operations used by the handler.
type AilmentService interface {
	List(ctx context.Context) ([]entities.Ailment, error)
	Get(ctx context.Context, id string) (*entities.Ailment, error)
	Create(ctx context.Context, input services.CreateAilmentInput) (entities.Ailment, error)
	Update(ctx context.Context, id string, input services.UpdateAilmentInput) (*entities.Ailment, error)
	Delete(ctx context.Context, id string) (entities.DeleteResponse, error)
}

// AilmentHandler handles ailment CRUD requests.
type AilmentHandler struct {
	service AilmentService
}

// NewAilmentHandler creates a new ailment handler.
func NewAilmentHandler(service AilmentService) *AilmentHandler {
	return &AilmentHandler{service: service}
}

// ListAilments handles GET /api/ailments
func (h *AilmentHandler) ListAilments(w http.ResponseWriter, r *http.Request) {
	ailments, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err, "failed to list ailments")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ailments": ailments,
		"count":    len(ailments),
	})
}

// GetAilment handles GET /api/ailments/{id}
func (h *AilmentHandler) GetAilment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "ailment ID is required")
		return
	}

	ailment, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to get ailment")
		return
	}
	if ailment == nil {
		respondWithError(w, http.StatusNotFound, "ailment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, ailment)
}

// CreateAilment handles POST /api/ailments
func (h *AilmentHandler) CreateAilment(w http.ResponseWriter, r *http.Request) {
	var input services.CreateAilmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithAppError(w, apperrors.NewValidationError("invalid request payload"), "invalid request payload")
		return
	}

	ailment, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err, "failed to create ailment")
		return
	}

	respondWithJSON(w, http.StatusCreated, ailment)
}

// UpdateAilment handles PUT /api/ailments/{id}
func (h *AilmentHandler) UpdateAilment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "ailment ID is required")
		return
	}

	var input services.UpdateAilmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithAppError(w, apperrors.NewValidationError("invalid request payload"), "invalid request payload")
		return
	}

	ailment, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, "ailment not found")
			return
		}
		respondWithAppError(w, err, "failed to update ailment")
		return
	}
	if ailment == nil {
		respondWithError(w, http.StatusNotFound, "ailment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, ailment)
}

// DeleteAilment handles DELETE /api/ailments/{id}
func (h *AilmentHandler) DeleteAilment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "ailment ID is required")
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to delete ailment")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps typed application errors to status codes; anything
// untyped gets a 500 with the fallback message.
func respondWithAppError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondWithError(w, http.StatusInternalServerError, fallback)
		return
	}

	status := http.StatusInternalServerError
	message := appErr.Message
	switch appErr.Type {
	case apperrors.ErrorTypeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrorTypeValidation:
		status = http.StatusBadRequest
	case apperrors.ErrorTypeExternal:
		status = http.StatusBadGateway
	default:
		message = fallback
	}
	respondWithError(w, status, message)
}
