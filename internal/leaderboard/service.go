package leaderboard

import (
	"context"

	"github.com/google/uuid"

	"quizmaster/internal/config"
)

// TopLimit is how many rows the leaderboard endpoint returns.
const TopLimit = 50

type Service interface {
	Refresh(ctx context.Context, userID uuid.UUID) error
	Top(ctx context.Context) ([]Row, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Refresh recomputes and upserts the given user's leaderboard row.
func (s *service) Refresh(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	row, err := s.repo.AggregateFor(userID)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate leaderboard stats", "user_id", userID.String())
		return err
	}

	if err := s.repo.Upsert(row); err != nil {
		log.WithError(err).Error("Failed to upsert leaderboard row", "user_id", userID.String())
		return err
	}

	return nil
}

func (s *service) Top(ctx context.Context) ([]Row, error) {
	log := config.WithContext(ctx)

	rows, err := s.repo.Top(TopLimit)
	if err != nil {
		log.WithError(err).Error("Failed to fetch leaderboard")
		return nil, err
	}
	return rows, nil
}
