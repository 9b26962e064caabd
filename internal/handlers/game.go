package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
)

// GameHandler coordinates game catalog HTTP handlers.
type GameHandler struct {
	gameService *services.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame adds a game to the catalog.
func (h *GameHandler) CreateGame(c *gin.Context) {
	type CreateGameRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	game, err := h.gameService.CreateGame(req.Name)
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// GetGame returns a single game.
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid game ID")
		return
	}

	game, err := h.gameService.GetGame(id)
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// ListGames returns the full catalog.
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames()
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// UpdateGame renames a game.
func (h *GameHandler) UpdateGame(c *gin.Context) {
	type UpdateGameRequest struct {
		Name string `json:"name" binding:"required"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid game ID")
		return
	}

	var req UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	game, err := h.gameService.UpdateGame(id, req.Name)
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame removes a game from the catalog.
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid game ID")
		return
	}

	if err := h.gameService.DeleteGame(id); err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Game deleted successfully",
	})
}

func respondGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrGameNameEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
