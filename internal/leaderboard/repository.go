package leaderboard

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	AggregateFor(userID uuid.UUID) (*Row, error)
	Upsert(row *Row) error
	Top(limit int) ([]Row, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// AggregateFor recomputes a user's row from their quiz_results.
func (r *repository) AggregateFor(userID uuid.UUID) (*Row, error) {
	var row Row
	err := r.db.Raw(`
		SELECT
			u.id AS user_id,
			u.name AS name,
			COUNT(qr.id) AS total_quizzes,
			COALESCE(AVG(qr.percentage), 0) AS average_score,
			COALESCE(SUM(qr.score), 0) AS total_correct_answers,
			MAX(qr.created_at) AS last_activity
		FROM users u
		LEFT JOIN quiz_results qr ON u.id = qr.user_id
		WHERE u.id = ?
		GROUP BY u.id
	`, userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Upsert(row *Row) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(row).Error
}

func (r *repository) Top(limit int) ([]Row, error) {
	var rows []Row
	err := r.db.
		Order("average_score DESC").
		Order("total_quizzes DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
