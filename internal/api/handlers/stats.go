package handlers

import (
	"net/http"

	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the derived statistics. Unknown ids produce zero-valued statistics.
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetMemberStats returns a member's statistics
// @Summary Member statistics
// @Description Task counts, completion rate, average rating and daily rating trend of a member
// @Tags stats
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} stats.MemberStats
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Router /members/{id}/stats [get]
func (h *StatsHandler) GetMemberStats(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.statsService.GetMemberStats(id))
}

// GetMemberDimensions returns a member's per-dimension averages
// @Summary Member dimension averages
// @Tags stats
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} stats.DimensionAverages
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Router /members/{id}/dimensions [get]
func (h *StatsHandler) GetMemberDimensions(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.statsService.GetMemberDimensions(id))
}

// GetLeaderboard ranks all members
// @Summary Team leaderboard
// @Description All members ranked by average rating, highest first
// @Tags stats
// @Produce json
// @Success 200 {array} stats.LeaderboardEntry
// @Router /leaderboard [get]
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.GetLeaderboard())
}

// GetTaskLeaderboard ranks a task's assigned members
// @Summary Task leaderboard
// @Description Assigned members ranked by their average rating on the task, highest first
// @Tags stats
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} stats.TaskLeaderboardEntry
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Router /tasks/{id}/leaderboard [get]
func (h *StatsHandler) GetTaskLeaderboard(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.statsService.GetTaskLeaderboard(id))
}

// GetTaskStats returns a task's statistics
// @Summary Task statistics
// @Tags stats
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} stats.TaskStats
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Router /tasks/{id}/stats [get]
func (h *StatsHandler) GetTaskStats(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.statsService.GetTaskStats(id))
}

// GetDashboard returns the team summary
// @Summary Dashboard
// @Description Team totals, completion rate and the most recent ratings
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Summary
// @Router /dashboard [get]
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.GetDashboard())
}
