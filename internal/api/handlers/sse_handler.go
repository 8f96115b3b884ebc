package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
)

// SSEHandler exposes the push surface: one Server-Sent Events stream per
// aggregate lifecycle channel (created, updated, deleted).
type SSEHandler struct {
	eventBus providers.EventBus
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{eventBus: eventBus}
}

// StreamCreated handles GET /api/stream/ailments/created
func (h *SSEHandler) StreamCreated(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelAilmentCreated)
}

// StreamUpdated handles GET /api/stream/ailments/updated
func (h *SSEHandler) StreamUpdated(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelAilmentUpdated)
}

// StreamDeleted handles GET /api/stream/ailments/deleted
func (h *SSEHandler) StreamDeleted(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelAilmentDeleted)
}

func (h *SSEHandler) stream(w http.ResponseWriter, r *http.Request, channel string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// The subscription is released when the request context is cancelled
	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("Failed to subscribe to channel")
		respondWithError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	h.sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Str("channel", channel).Msg("Client disconnected from stream")
			return
		case <-ticker.C:
			// Send heartbeat
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			h.sendEvent(w, string(event.EventType), event)
			flusher.Flush()
		}
	}
}

// sendEvent writes a single SSE frame
func (h *SSEHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("Failed to marshal SSE payload")
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload)
}
