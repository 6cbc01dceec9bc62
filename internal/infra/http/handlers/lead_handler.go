package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/http/middleware"
	"github.com/chateaubevvy/bevvy-leads/internal/usecase"
)

type LeadHandler struct {
	CaptureLead *usecase.CaptureLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(captureLead *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CaptureLead: captureLead,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// One route per website form.

func (h *LeadHandler) HandleWaitlist(w http.ResponseWriter, r *http.Request) {
	h.handleCapture(w, r, entity.SourceWaitlist)
}

func (h *LeadHandler) HandleEventInquiry(w http.ResponseWriter, r *http.Request) {
	h.handleCapture(w, r, entity.SourceEventInquiry)
}

func (h *LeadHandler) HandleWineClubSignup(w http.ResponseWriter, r *http.Request) {
	h.handleCapture(w, r, entity.SourceWineClubSignup)
}

func (h *LeadHandler) HandleContactMessage(w http.ResponseWriter, r *http.Request) {
	h.handleCapture(w, r, entity.SourceContactMessage)
}

func (h *LeadHandler) handleCapture(w http.ResponseWriter, r *http.Request, source string) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Error:   "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}
	input.Source = source

	_, err := h.CaptureLead.Execute(r.Context(), input)
	if err != nil {
		var validationErr usecase.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
				Success: false,
				Error:   validationErr.Error(),
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{
			Success: false,
			Error:   "Failed to capture lead. Please try again.",
		})
		return
	}

	middleware.RecordLeadCaptured(source)

	writeJSON(w, http.StatusOK, CaptureLeadResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
