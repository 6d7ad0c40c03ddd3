package handlers

import (
	"net/http"

	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for ratings
type RatingHandler struct {
	ratingService service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// CreateRating records a rating
// @Summary Rate a member on a task
// @Description Record four 1-5 scores for a member on a task.
// @Description
// @Description Optional Fields with Defaults:
// @Description - mode: Defaults to 'daily' (valid values: daily, final)
// @Description - timestamp: Defaults to the current time
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body service.CreateRatingRequest true "Rating data"
// @Success 201 {object} service.RatingResponse "Successfully created rating"
// @Failure 400 {object} ErrorResponse "Invalid request body or score out of range"
// @Failure 404 {object} ErrorResponse "Task or member not found"
// @Router /ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req service.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.ratingService.CreateRating(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// GetRatingsByTask lists a task's ratings
// @Summary List ratings of a task
// @Tags ratings
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} service.RatingResponse "Newest first"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Router /tasks/{id}/ratings [get]
func (h *RatingHandler) GetRatingsByTask(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	ratings, err := h.ratingService.GetRatingsByTask(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetRatingsByTaskAndMember lists one member's ratings on a task
// @Summary List a member's ratings on a task
// @Tags ratings
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {array} service.RatingResponse "Newest first"
// @Failure 400 {object} ErrorResponse "Invalid task or member ID"
// @Router /tasks/{id}/ratings/{memberId} [get]
func (h *RatingHandler) GetRatingsByTaskAndMember(c *gin.Context) {
	taskID, ok := parseID(c, "id", "task")
	if !ok {
		return
	}
	memberID, ok := parseID(c, "memberId", "member")
	if !ok {
		return
	}

	ratings, err := h.ratingService.GetRatingsByTaskAndMember(taskID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetRatingsByMember lists a member's ratings
// @Summary List ratings of a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {array} service.RatingResponse "Newest first"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Router /members/{id}/ratings [get]
func (h *RatingHandler) GetRatingsByMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	ratings, err := h.ratingService.GetRatingsByMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// DeleteRating deletes a rating
// @Summary Delete rating
// @Tags ratings
// @Param id path string true "Rating ID (UUID)"
// @Success 204 "Successfully deleted rating"
// @Failure 400 {object} ErrorResponse "Invalid rating ID"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Router /ratings/{id} [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, ok := parseID(c, "id", "rating")
	if !ok {
		return
	}

	if err := h.ratingService.DeleteRating(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
