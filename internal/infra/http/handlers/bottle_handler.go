package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chateaubevvy/bevvy-leads/internal/infra/http/middleware"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/integration/aigateway"
)

// BottleRendererInterface is what the handler needs from the AI gateway.
type BottleRendererInterface interface {
	GenerateBottle(ctx context.Context, input aigateway.GenerateBottleInput) (*aigateway.GenerateBottleOutput, error)
}

type BottleHandler struct {
	Renderer BottleRendererInterface
}

func NewBottleHandler(renderer BottleRendererInterface) *BottleHandler {
	return &BottleHandler{Renderer: renderer}
}

type GenerateBottleRequest struct {
	LabelImageBase64 string `json:"labelImageBase64"`
	WineName         string `json:"wineName"`
	WineType         string `json:"wineType"`
	BottleStyle      string `json:"bottleStyle,omitempty"`
}

type GenerateBottleResponse struct {
	Success  bool   `json:"success,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	WineName string `json:"wineName,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *BottleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateBottleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, GenerateBottleResponse{Error: "Invalid JSON"})
		return
	}

	if req.LabelImageBase64 == "" || req.WineName == "" || req.WineType == "" {
		writeJSON(w, http.StatusBadRequest, GenerateBottleResponse{
			Error: "Missing required fields: labelImageBase64, wineName, wineType",
		})
		return
	}

	output, err := h.Renderer.GenerateBottle(r.Context(), aigateway.GenerateBottleInput{
		LabelImageBase64: req.LabelImageBase64,
		WineName:         req.WineName,
		WineType:         req.WineType,
		BottleStyle:      req.BottleStyle,
	})
	if err != nil {
		var genErr *aigateway.GenerationError
		if errors.As(err, &genErr) {
			middleware.RecordBottleGeneration(genErr.Kind)
			writeJSON(w, statusForGenerationError(genErr), GenerateBottleResponse{Error: genErr.Message})
			return
		}

		middleware.RecordBottleGeneration(aigateway.KindUpstreamError)
		writeJSON(w, http.StatusInternalServerError, GenerateBottleResponse{Error: err.Error()})
		return
	}

	middleware.RecordBottleGeneration("success")

	writeJSON(w, http.StatusOK, GenerateBottleResponse{
		Success:  true,
		ImageURL: output.ImageURL,
		WineName: output.WineName,
	})
}

func statusForGenerationError(err *aigateway.GenerationError) int {
	switch err.Kind {
	case aigateway.KindRateLimited:
		return http.StatusTooManyRequests
	case aigateway.KindQuotaExhausted:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
