package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves PDF reports as downloads
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// MemberReport downloads a member's performance report
// @Summary Member performance report
// @Tags reports
// @Produce application/pdf
// @Param id path string true "Member ID (UUID)"
// @Success 200 {file} file "PDF report"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /members/{id}/report [get]
func (h *ExportHandler) MemberReport(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	var buf bytes.Buffer
	name, err := h.exportService.MemberReport(&buf, id)
	sendPDF(c, &buf, name, err)
}

// TaskReport downloads a task report
// @Summary Task report
// @Tags reports
// @Produce application/pdf
// @Param id path string true "Task ID (UUID)"
// @Success 200 {file} file "PDF report"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id}/report [get]
func (h *ExportHandler) TaskReport(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var buf bytes.Buffer
	name, err := h.exportService.TaskReport(&buf, id)
	sendPDF(c, &buf, name, err)
}

// TeamReport downloads the team leaderboard report
// @Summary Team report
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} file "PDF report"
// @Router /reports/team [get]
func (h *ExportHandler) TeamReport(c *gin.Context) {
	var buf bytes.Buffer
	name, err := h.exportService.TeamReport(&buf)
	sendPDF(c, &buf, name, err)
}

func sendPDF(c *gin.Context, buf *bytes.Buffer, fileName string, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
