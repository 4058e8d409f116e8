package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stats carries the profile aggregates computed over quiz_results.
type Stats struct {
	TotalQuizzes int64      `json:"total_quizzes"`
	AverageScore float64    `json:"average_score"`
	LastQuizDate *time.Time `json:"last_quiz_date"`
}

type Repository interface {
	Create(u *User) error
	FindByEmail(email string) (*User, error)
	FindByID(id uuid.UUID) (*User, error)
	UpdateColumns(id uuid.UUID, columns map[string]interface{}) error
	Stats(id uuid.UUID) (*Stats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// UpdateColumns applies a partial update built from whichever profile fields
// the caller supplied.
func (r *repository) UpdateColumns(id uuid.UUID, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return r.db.Model(&User{}).Where("id = ?", id).Updates(columns).Error
}

func (r *repository) Stats(id uuid.UUID) (*Stats, error) {
	var stats Stats
	err := r.db.Raw(`
		SELECT
			COUNT(qr.id) AS total_quizzes,
			COALESCE(AVG(qr.percentage), 0) AS average_score,
			MAX(qr.created_at) AS last_quiz_date
		FROM quiz_results qr
		WHERE qr.user_id = ?
	`, id).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
