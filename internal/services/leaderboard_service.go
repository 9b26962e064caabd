package services

import (
	"errors"
	"fmt"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"github.com/classpoint/classroom-api/internal/utils"
	"gorm.io/gorm"
)

var ErrNotInClassroom = errors.New("user must be in a classroom to submit scores")

// LeaderboardService provides business logic for score submission and queries.
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	userRepo        repository.UserRepository
	gameRepo        repository.GameRepository
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository, userRepo repository.UserRepository, gameRepo repository.GameRepository) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
		gameRepo:        gameRepo,
	}
}

// SubmitScore records a score for the user's current classroom.
func (s *LeaderboardService) SubmitScore(userID, gameID uint64, value int64) (*models.LeaderboardEntry, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.ClassroomID == nil {
		return nil, ErrNotInClassroom
	}

	if _, err := s.gameRepo.FindByID(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	entry := &models.LeaderboardEntry{
		GameID:      gameID,
		UserID:      userID,
		ClassroomID: *user.ClassroomID,
		Value:       value,
	}

	if err := s.leaderboardRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}
	return entry, nil
}

// GameLeaderboard returns a page of a game's scores, highest first.
func (s *LeaderboardService) GameLeaderboard(gameID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	return s.leaderboardRepo.ListByGame(gameID, params)
}

// ClassroomLeaderboard returns a page of a classroom's scores, highest first.
func (s *LeaderboardService) ClassroomLeaderboard(classroomID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	return s.leaderboardRepo.ListByClassroom(classroomID, params)
}

// UserScores returns a page of one user's scores, highest first.
func (s *LeaderboardService) UserScores(userID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	return s.leaderboardRepo.ListByUser(userID, params)
}
