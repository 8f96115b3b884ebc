package ailmentapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/database"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/events"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/handlers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/application/services"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/infrastructure/clients/ailmentapi"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/view"
	apperrors "github.com/makjesusfreak-ai/ReactWebApp99/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	service := services.NewAilmentService(database.NewMemoryAdapter(), events.NewMemoryEventBus())
	handler := handlers.NewAilmentHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ailments", handler.ListAilments)
	mux.HandleFunc("POST /api/ailments", handler.CreateAilment)
	mux.HandleFunc("PUT /api/ailments/{id}", handler.UpdateAilment)
	mux.HandleFunc("DELETE /api/ailments/{id}", handler.DeleteAilment)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	client := ailmentapi.NewClient(server.URL)

	ailment := entities.Ailment{
		ID:      "a1",
		Ailment: entities.AilmentDetails{Name: "Migraine", Intensity: 70},
		Treatments: []entities.Treatment{
			{ID: "t1", Name: "Sumatriptan", Efficacy: 85},
		},
	}
	require.NoError(t, client.Create(ctx, ailment))

	listed, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Migraine", listed[0].Ailment.Name)
	require.Len(t, listed[0].Treatments, 1)

	edited := listed[0]
	edited.Ailment.Name = "Chronic Migraine"
	require.NoError(t, client.Update(ctx, edited))

	listed, err = client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chronic Migraine", listed[0].Ailment.Name)

	require.NoError(t, client.Delete(ctx, "a1"))
	listed, err = client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestHTTPClient_UpdateMissingIsNotFound(t *testing.T) {
	server := newTestServer(t)
	client := ailmentapi.NewClient(server.URL)

	err := client.Update(context.Background(), entities.Ailment{ID: "missing"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

// A session can drive the whole engine through the HTTP remote.
func TestHTTPClient_BacksASession(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	client := ailmentapi.NewClient(server.URL)

	session := view.NewSession(client, events.NewMemoryEventBus(), nil)
	session.SaveAilment(ctx, entities.Ailment{
		ID:      "a1",
		Ailment: entities.AilmentDetails{Name: "Flu"},
	})
	session.Wait()

	require.NoError(t, session.Load(ctx))
	ailments := session.Ailments()
	require.Len(t, ailments, 1)
	assert.Equal(t, "Flu", ailments[0].Ailment.Name)
}
