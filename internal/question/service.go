package question

import (
	"context"
	"encoding/json"
	"math/rand"
	"sort"

	"quizmaster/internal/config"
)

// DefaultLimit is how many questions a fetch returns when the caller does
// not ask for a specific amount.
const DefaultLimit = 10

type Service interface {
	List(ctx context.Context, category, difficulty string, limit int) ([]QuestionResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, category, difficulty string, limit int) ([]QuestionResponse, error) {
	log := config.WithContext(ctx)

	if limit <= 0 {
		limit = DefaultLimit
	}

	questions, err := s.repo.Find(category, difficulty, limit)
	if err != nil {
		log.WithError(err).Error("Failed to fetch questions")
		return nil, err
	}

	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var incorrect []string
		if err := json.Unmarshal(q.IncorrectAnswers, &incorrect); err != nil {
			log.WithError(err).Error("Failed to decode incorrect answers", "question_id", q.ID.String())
			return nil, err
		}

		options := append(incorrect, q.CorrectAnswer)
		shuffleOptions(options)

		responses = append(responses, QuestionResponse{
			ID:            q.ID,
			Category:      q.Category,
			Difficulty:    q.Difficulty,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       options,
		})
	}

	return responses, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.Categories()
	if err != nil {
		log.WithError(err).Error("Failed to fetch categories")
		return nil, err
	}
	return categories, nil
}

// shuffleOptions randomizes option order with a coin-flip comparator. Good
// enough for presenting answers, not a uniform shuffle.
func shuffleOptions(options []string) {
	sort.Slice(options, func(i, j int) bool {
		return rand.Intn(2) == 0
	})
}
