package result

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// historyLimit caps the personal history query.
const historyLimit = 20

type Repository interface {
	Create(r *QuizResult) error
	HistoryByUser(userID uuid.UUID) ([]QuizResult, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(res *QuizResult) error {
	return r.db.Create(res).Error
}

func (r *repository) HistoryByUser(userID uuid.UUID) ([]QuizResult, error) {
	var results []QuizResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
