package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/classroom-api/internal/dto"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/middleware"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/classpoint/classroom-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// LeaderboardHandler coordinates score submission and leaderboard queries.
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// SubmitScore records a score for the requester's current classroom.
func (h *LeaderboardHandler) SubmitScore(c *gin.Context) {
	type SubmitScoreRequest struct {
		GameID uint64 `json:"game_id" binding:"required"`
		Score  int64  `json:"score"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.leaderboardService.SubmitScore(userID, req.GameID, req.Score)
	if err != nil {
		respondLeaderboardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeaderboardEntryDTO(*entry))
}

// GameLeaderboard returns a page of a game's scores, highest first.
func (h *LeaderboardHandler) GameLeaderboard(c *gin.Context) {
	h.listPage(c, h.leaderboardService.GameLeaderboard, "Invalid game ID")
}

// ClassroomLeaderboard returns a page of a classroom's scores, highest first.
func (h *LeaderboardHandler) ClassroomLeaderboard(c *gin.Context) {
	h.listPage(c, h.leaderboardService.ClassroomLeaderboard, "Invalid classroom ID")
}

// UserScores returns a page of one user's scores, highest first.
func (h *LeaderboardHandler) UserScores(c *gin.Context) {
	h.listPage(c, h.leaderboardService.UserScores, "Invalid user ID")
}

func (h *LeaderboardHandler) listPage(c *gin.Context, list func(uint64, utils.PaginationParams) ([]models.LeaderboardEntry, int64, error), badID string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, badID)
		return
	}

	params := utils.GetPaginationParams(c)
	entries, total, err := list(id, params)
	if err != nil {
		respondLeaderboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaderboardPageDTO(entries, params, total))
}

func respondLeaderboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotInClassroom):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
