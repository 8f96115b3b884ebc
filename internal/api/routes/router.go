package routes

import (
	"net/http"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/handlers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	ailmentHandler *handlers.AilmentHandler
	chartHandler   *handlers.ChartHandler
	sseHandler     *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
}

// NewRouter creates a new router
func NewRouter(
	ailmentHandler *handlers.AilmentHandler,
	chartHandler *handlers.ChartHandler,
	sseHandler *handlers.SSEHandler,
	cacheMiddleware *middleware.CacheMiddleware,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		ailmentHandler:  ailmentHandler,
		chartHandler:    chartHandler,
		sseHandler:      sseHandler,
		cacheMiddleware: cacheMiddleware,
	}
}

// Setup registers all routes and returns the wrapped handler
func (r *Router) Setup() http.Handler {
	// Ailment CRUD
	r.mux.HandleFunc("GET /api/ailments", r.ailmentHandler.ListAilments)
	r.mux.HandleFunc("GET /api/ailments/{id}", r.ailmentHandler.GetAilment)
	r.mux.HandleFunc("POST /api/ailments", r.ailmentHandler.CreateAilment)
	r.mux.HandleFunc("PUT /api/ailments/{id}", r.ailmentHandler.UpdateAilment)
	r.mux.HandleFunc("DELETE /api/ailments/{id}", r.ailmentHandler.DeleteAilment)

	// Visualization
	r.mux.HandleFunc("GET /api/charts/bubble", r.chartHandler.BubbleChart)

	// Push surface
	r.mux.HandleFunc("GET /api/stream/ailments/created", r.sseHandler.StreamCreated)
	r.mux.HandleFunc("GET /api/stream/ailments/updated", r.sseHandler.StreamUpdated)
	r.mux.HandleFunc("GET /api/stream/ailments/deleted", r.sseHandler.StreamDeleted)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	var handler http.Handler = r.mux
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}
	handler = middleware.CORSMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	return handler
}
