package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chateaubevvy/bevvy-leads/internal/infra/integration/ghl"
	"github.com/chateaubevvy/bevvy-leads/internal/usecase"
)

// RelayHandler keeps the original send-to-crm function contract for the
// website: it always answers HTTP 200 and reports failure in-band, so the
// fire-and-forget fetch on the front-end never needs an error path.
type RelayHandler struct {
	Forwarder usecase.CRMForwarderInterface
}

func NewRelayHandler(forwarder usecase.CRMForwarderInterface) *RelayHandler {
	return &RelayHandler{Forwarder: forwarder}
}

type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

func (h *RelayHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var leadData ghl.LeadData
	if err := json.NewDecoder(r.Body).Decode(&leadData); err != nil {
		writeJSON(w, http.StatusOK, RelayResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	result := h.Forwarder.ForwardLead(r.Context(), leadData.ToLead())
	if !result.Delivered() {
		writeJSON(w, http.StatusOK, RelayResponse{
			Success: false,
			Error:   "Failed to send to CRM",
			Status:  result.Status,
		})
		return
	}

	writeJSON(w, http.StatusOK, RelayResponse{
		Success: true,
		Message: "Lead sent to CRM",
	})
}
