package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameNameEmpty = errors.New("game name is required")
)

// GameService provides business logic for the game catalog.
type GameService struct {
	gameRepo repository.GameRepository
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo repository.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

// CreateGame adds a game to the catalog.
func (s *GameService) CreateGame(name string) (*models.Game, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrGameNameEmpty
	}

	game := &models.Game{Name: name}
	if err := s.gameRepo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// GetGame retrieves a game by ID.
func (s *GameService) GetGame(id uint64) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	return game, nil
}

// ListGames returns the catalog ordered by name.
func (s *GameService) ListGames() ([]models.Game, error) {
	games, err := s.gameRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// UpdateGame renames a game.
func (s *GameService) UpdateGame(id uint64, name string) (*models.Game, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrGameNameEmpty
	}

	game, err := s.GetGame(id)
	if err != nil {
		return nil, err
	}

	game.Name = name
	if err := s.gameRepo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, nil
}

// DeleteGame removes a game from the catalog.
func (s *GameService) DeleteGame(id uint64) error {
	affected, err := s.gameRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}
	return nil
}
