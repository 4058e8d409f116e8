package result

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quizmaster/internal/config"
	"quizmaster/internal/leaderboard"
)

// ErrMissingFields is returned when a required submission field is absent.
var ErrMissingFields = errors.New("missing required fields")

type Service interface {
	Submit(ctx context.Context, userID string, dto SubmitResultDTO) (*QuizResult, error)
	History(ctx context.Context, userID string) ([]QuizResult, error)
}

type service struct {
	repo        Repository
	leaderboard leaderboard.Service
}

func NewService(repo Repository, lb leaderboard.Service) Service {
	return &service{repo: repo, leaderboard: lb}
}

// Submit persists the result and kicks off the leaderboard refresh in the
// background. The response never waits for the refresh; its failure is only
// logged, and the row stays stale until the user's next submission.
func (s *service) Submit(ctx context.Context, userID string, dto SubmitResultDTO) (*QuizResult, error) {
	log := config.WithContext(ctx)

	if dto.Category == "" || dto.Difficulty == "" ||
		dto.Score == nil || dto.TotalQuestions == nil || dto.Percentage == nil {
		return nil, ErrMissingFields
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	res := QuizResult{
		UserID:         id,
		Category:       dto.Category,
		Difficulty:     dto.Difficulty,
		Score:          *dto.Score,
		TotalQuestions: *dto.TotalQuestions,
		Percentage:     *dto.Percentage,
		TimeTaken:      dto.TimeTaken,
	}
	if err := s.repo.Create(&res); err != nil {
		log.WithError(err).Error("Failed to save quiz result")
		return nil, err
	}

	go func() {
		if err := s.leaderboard.Refresh(context.Background(), id); err != nil {
			log.WithError(err).Error("Leaderboard refresh failed", "user_id", userID)
		}
	}()

	log.Info("Quiz result saved", "result_id", res.ID.String())
	return &res, nil
}

func (s *service) History(ctx context.Context, userID string) ([]QuizResult, error) {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	results, err := s.repo.HistoryByUser(id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz history")
		return nil, err
	}
	return results, nil
}
