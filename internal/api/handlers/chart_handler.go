package handlers

import (
	"net/http"
	"strings"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/loaders"
)

// BubbleChartDataPoint is one bubble in the ailment visualization: position
// from duration and intensity, bubble size from severity, and the most
// effective treatment for the tooltip.
type BubbleChartDataPoint struct {
	ID              string            `json:"id"`
	AilmentName     string            `json:"ailmentName"`
	Duration        int64             `json:"duration"`
	Intensity       int               `json:"intensity"`
	TopTreatment    *TopTreatmentInfo `json:"topTreatment"`
	AilmentSeverity int               `json:"ailmentSeverity"`
}

// TopTreatmentInfo summarizes the highest-efficacy treatment
type TopTreatmentInfo struct {
	Name      string `json:"name"`
	Efficacy  int    `json:"efficacy"`
	Intensity int    `json:"intensity"`
}

// ChartHandler serves datapoints for the bubble-chart visualization.
type ChartHandler struct {
	service AilmentService
	loaders *loaders.Loaders
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(service AilmentService, l *loaders.Loaders) *ChartHandler {
	return &ChartHandler{service: service, loaders: l}
}

// BubbleChart handles GET /api/charts/bubble. An optional ids query
// parameter (comma-separated) restricts the chart to a subset of aggregates,
// batch-loaded through the dataloader; ids absent from the store are skipped.
func (h *ChartHandler) BubbleChart(w http.ResponseWriter, r *http.Request) {
	var ailments []entities.Ailment

	if idsParam := strings.TrimSpace(r.URL.Query().Get("ids")); idsParam != "" {
		ids := strings.Split(idsParam, ",")
		thunks := h.loaders.AilmentLoader.LoadMany(r.Context(), ids)
		loaded, errs := thunks()
		for i, a := range loaded {
			if i < len(errs) && errs[i] != nil {
				continue
			}
			if a != nil {
				ailments = append(ailments, *a)
			}
		}
	} else {
		all, err := h.service.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list ailments")
			return
		}
		ailments = all
	}

	datapoints := make([]BubbleChartDataPoint, 0, len(ailments))
	for _, ailment := range ailments {
		point := BubbleChartDataPoint{
			ID:              ailment.ID,
			AilmentName:     ailment.Ailment.Name,
			Duration:        ailment.Ailment.Duration,
			Intensity:       ailment.Ailment.Intensity,
			AilmentSeverity: ailment.Ailment.Severity,
		}
		if top := ailment.TopTreatment(); top != nil {
			point.TopTreatment = &TopTreatmentInfo{
				Name:      top.Name,
				Efficacy:  top.Efficacy,
				Intensity: top.Intensity,
			}
		}
		datapoints = append(datapoints, point)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"datapoints": datapoints,
		"count":      len(datapoints),
	})
}
