package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/handlers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/application/services"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	apperrors "github.com/makjesusfreak-ai/ReactWebApp99/pkg/errors"
)

// stubAilmentService returns canned results per operation
type stubAilmentService struct {
	listResult   []entities.Ailment
	listErr      error
	getResult    *entities.Ailment
	getErr       error
	createResult entities.Ailment
	createErr    error
	updateResult *entities.Ailment
	updateErr    error
	deleteResult entities.DeleteResponse
	deleteErr    error

	lastCreateInput services.CreateAilmentInput
	lastUpdateInput services.UpdateAilmentInput
	lastUpdateID    string
}

func (s *stubAilmentService) List(ctx context.Context) ([]entities.Ailment, error) {
	return s.listResult, s.listErr
}

func (s *stubAilmentService) Get(ctx context.Context, id string) (*entities.Ailment, error) {
	return s.getResult, s.getErr
}

func (s *stubAilmentService) Create(ctx context.Context, input services.CreateAilmentInput) (entities.Ailment, error) {
	s.lastCreateInput = input
	return s.createResult, s.createErr
}

func (s *stubAilmentService) Update(ctx context.Context, id string, input services.UpdateAilmentInput) (*entities.Ailment, error) {
	s.lastUpdateID = id
	s.lastUpdateInput = input
	return s.updateResult, s.updateErr
}

func (s *stubAilmentService) Delete(ctx context.Context, id string) (entities.DeleteResponse, error) {
	return s.deleteResult, s.deleteErr
}

func newMux(service handlers.AilmentService) *http.ServeMux {
	handler := handlers.NewAilmentHandler(service)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ailments", handler.ListAilments)
	mux.HandleFunc("GET /api/ailments/{id}", handler.GetAilment)
	mux.HandleFunc("POST /api/ailments", handler.CreateAilment)
	mux.HandleFunc("PUT /api/ailments/{id}", handler.UpdateAilment)
	mux.HandleFunc("DELETE /api/ailments/{id}", handler.DeleteAilment)
	return mux
}

func TestListAilments(t *testing.T) {
	service := &stubAilmentService{
		listResult: []entities.Ailment{
			{ID: "a1", Ailment: entities.AilmentDetails{Name: "Migraine"}},
			{ID: "a2", Ailment: entities.AilmentDetails{Name: "Flu"}},
		},
	}

	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ailments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Ailments []entities.Ailment `json:"ailments"`
		Count    int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Ailments, 2)
}

func TestListAilments_ServiceError(t *testing.T) {
	service := &stubAilmentService{listErr: errors.New("boom")}

	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ailments", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetAilment(t *testing.T) {
	ailment := entities.Ailment{ID: "a1", Ailment: entities.AilmentDetails{Name: "Migraine"}}
	service := &stubAilmentService{getResult: &ailment}

	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ailments/a1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body entities.Ailment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a1", body.ID)
}

func TestGetAilment_NotFound(t *testing.T) {
	service := &stubAilmentService{}

	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ailments/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAilment(t *testing.T) {
	service := &stubAilmentService{
		createResult: entities.Ailment{ID: "a1", Ailment: entities.AilmentDetails{Name: "Migraine"}},
	}

	payload := `{"ailment":{"name":"Migraine","intensity":70},"treatments":[{"name":"Rest"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/ailments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Migraine", service.lastCreateInput.Ailment.Name)
	require.Len(t, service.lastCreateInput.Treatments, 1)
}

func TestCreateAilment_InvalidPayload(t *testing.T) {
	service := &stubAilmentService{}

	req := httptest.NewRequest(http.MethodPost, "/api/ailments", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAilment_PartialGroups(t *testing.T) {
	updated := entities.Ailment{ID: "a1"}
	service := &stubAilmentService{updateResult: &updated}

	// Only the treatments group is present in the payload; the absent ailment
	// group must decode to nil so the service leaves it untouched.
	payload := `{"treatments":[{"name":"Sumatriptan"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/ailments/a1", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a1", service.lastUpdateID)
	assert.Nil(t, service.lastUpdateInput.Ailment)
	require.Len(t, service.lastUpdateInput.Treatments, 1)
	assert.Nil(t, service.lastUpdateInput.Diagnostics)
}

func TestUpdateAilment_EmptySliceIsPresent(t *testing.T) {
	updated := entities.Ailment{ID: "a1"}
	service := &stubAilmentService{updateResult: &updated}

	payload := `{"treatments":[]}`
	req := httptest.NewRequest(http.MethodPut, "/api/ailments/a1", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, service.lastUpdateInput.Treatments)
	assert.Empty(t, service.lastUpdateInput.Treatments)
}

func TestUpdateAilment_NotFound(t *testing.T) {
	service := &stubAilmentService{
		updateErr: apperrors.NewNotFoundError("ailment missing not found"),
	}

	req := httptest.NewRequest(http.MethodPut, "/api/ailments/missing", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAilment_InternalErrorStays500(t *testing.T) {
	service := &stubAilmentService{updateErr: errors.New("boom")}

	req := httptest.NewRequest(http.MethodPut, "/api/ailments/a1", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteAilment(t *testing.T) {
	service := &stubAilmentService{
		deleteResult: entities.DeleteResponse{ID: "a1", Success: true, Message: "ailment deleted successfully"},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/ailments/a1", nil)
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body entities.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "a1", body.ID)
}

func TestDeleteAilment_AbsentStillOK(t *testing.T) {
	service := &stubAilmentService{
		deleteResult: entities.DeleteResponse{ID: "missing", Success: false, Message: "ailment not found"},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/ailments/missing", nil)
	rec := httptest.NewRecorder()
	newMux(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body entities.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}
