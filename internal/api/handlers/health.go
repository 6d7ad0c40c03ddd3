package handlers

import (
	"context"
	"net/http"
	"time"

	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger checks the database connection; *sql.DB satisfies it
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db        Pinger
	snapshots service.SnapshotProvider
}

func NewHealthHandler(db Pinger, snapshots service.SnapshotProvider) *HealthHandler {
	return &HealthHandler{db: db, snapshots: snapshots}
}

// HealthResponse is returned by the health and readiness probes. Snapshot is
// only filled in by readiness.
type HealthResponse struct {
	Status    string        `json:"status" example:"ok"`
	Database  string        `json:"database" example:"ok"`
	Snapshot  *SnapshotInfo `json:"snapshot,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}

// SnapshotInfo is the size of the in-memory statistics snapshot
type SnapshotInfo struct {
	Members int `json:"members"`
	Tasks   int `json:"tasks"`
	Ratings int `json:"ratings"`
}

// Health reports database connectivity
// @Summary Health check
// @Description Report whether the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.respond(c, h.probe(c.Request.Context()))
}

// Ready reports database connectivity and what the statistics snapshot holds
// @Summary Readiness check
// @Description Report whether the database answers a ping and the size of the statistics snapshot
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	resp := h.probe(c.Request.Context())
	snap := h.snapshots.Snapshot()
	resp.Snapshot = &SnapshotInfo{
		Members: len(snap.Members),
		Tasks:   len(snap.Tasks),
		Ratings: len(snap.Ratings),
	}
	h.respond(c, resp)
}

// Live answers as long as the process serves requests
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) probe(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "ok", CheckedAt: time.Now().UTC()}
	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Database = err.Error()
	}
	return resp
}

func (h *HealthHandler) respond(c *gin.Context, resp HealthResponse) {
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
