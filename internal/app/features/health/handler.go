package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/enrolldash/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger checks that a backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	CourseAPI Pinger
	Log       *zap.Logger
}

// NewHandler constructs a health Handler with the course API pinger and logger.
func NewHandler(courseAPI Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		CourseAPI: courseAPI,
		Log:       logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	CourseAPI string `json:"course_api"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "course_api":"reachable" }
//
// When the course API does not answer: 503 and
//
//	{ "status":"error", "course_api":"unreachable", "message":"Course API unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:    "ok",
		CourseAPI: "reachable",
	}

	if err := h.CourseAPI.Ping(ctx); err != nil {
		h.Log.Error("health-check: course API ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.CourseAPI = "unreachable"
		resp.Message = "Course API unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
