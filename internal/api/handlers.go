// Package api exposes HTTP handlers for the insight service.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"example.com/insight/internal/auth"
	"example.com/insight/internal/domain"
	"example.com/insight/internal/engine"
	"example.com/insight/internal/persistence"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/insights/current", h.currentInsight)
	mux.HandleFunc("/v1/insights/score", h.quickScore)
	mux.HandleFunc("/v1/insights/history", h.insightHistory)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) currentInsight(w http.ResponseWriter, r *http.Request) {
	claims, userID, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	snapshot, computed, err := h.service.CurrentInsight(r.Context(), claims.TenantID, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CurrentInsightResponse{
		Insight:       snapshot.Insight,
		SnapshotDate:  snapshot.Date,
		Computed:      computed,
		EngineVersion: snapshot.EngineVersion,
	})
}

func (h *Handler) quickScore(w http.ResponseWriter, r *http.Request) {
	claims, userID, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.service.QuickScore(r.Context(), claims.TenantID, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, QuickScoreResponse{
		Scores:       summary.Scores,
		Achievements: summary.Achievements,
	})
}

func (h *Handler) insightHistory(w http.ResponseWriter, r *http.Request) {
	claims, userID, ok := h.readRequest(w, r)
	if !ok {
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100
			}
			limit = parsed
		}
	}

	cursor, err := persistence.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid cursor")
		return
	}

	snapshots, next, err := h.service.InsightHistory(r.Context(), claims.TenantID, userID, cursor, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]SnapshotView, 0, len(snapshots))
	for _, snap := range snapshots {
		items = append(items, toSnapshotView(snap))
	}

	writeJSON(w, http.StatusOK, InsightHistoryResponse{
		Items:      items,
		NextCursor: persistence.EncodeCursor(next),
	})
}

// readRequest enforces the GET-only, authenticated, user-scoped contract
// shared by every insight endpoint.
func (h *Handler) readRequest(w http.ResponseWriter, r *http.Request) (*auth.Claims, string, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return nil, "", false
	}

	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, "", false
	}
	if !claims.HasScope(auth.ScopeInsightsRead) {
		writeError(w, http.StatusForbidden, "forbidden", "scope insights:read required")
		return nil, "", false
	}

	userID := r.URL.Query().Get("user_id")
	if strings.TrimSpace(userID) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing user_id parameter")
		return nil, "", false
	}

	return claims, userID, true
}

// CurrentInsightResponse wraps the weekly insight with snapshot metadata.
type CurrentInsightResponse struct {
	Insight       engine.WeeklyInsight `json:"insight"`
	SnapshotDate  string               `json:"snapshot_date"`
	Computed      bool                 `json:"computed"`
	EngineVersion string               `json:"engine_version"`
}

// QuickScoreResponse is the score-only payload.
type QuickScoreResponse struct {
	Scores       engine.Scores       `json:"scores"`
	Achievements engine.Achievements `json:"achievements"`
}

// SnapshotView exposes a stored insight without the full payload.
type SnapshotView struct {
	SnapshotID          string    `json:"snapshot_id"`
	Date                string    `json:"date"`
	TotalScore          int       `json:"total_score"`
	CardioScore         int       `json:"cardio_score"`
	StrengthScore       int       `json:"strength_score"`
	WHOCardioAchieved   bool      `json:"who_cardio_achieved"`
	WHOStrengthAchieved bool      `json:"who_strength_achieved"`
	EngineVersion       string    `json:"engine_version"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// InsightHistoryResponse packages history results.
type InsightHistoryResponse struct {
	Items      []SnapshotView `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toSnapshotView(snap domain.InsightSnapshot) SnapshotView {
	return SnapshotView{
		SnapshotID:          snap.ID,
		Date:                snap.Date,
		TotalScore:          snap.TotalScore,
		CardioScore:         snap.CardioScore,
		StrengthScore:       snap.StrengthScore,
		WHOCardioAchieved:   snap.WHOCardioAchieved,
		WHOStrengthAchieved: snap.WHOStrengthAchieved,
		EngineVersion:       snap.EngineVersion,
		CreatedAt:           snap.CreatedAt,
		UpdatedAt:           snap.UpdatedAt,
	}
}
