package leaderboard

import (
	"time"

	"github.com/google/uuid"
)

// Row is the denormalized per-user aggregate, recomputed after every
// submission. At most one row exists per user.
type Row struct {
	UserID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name                string     `gorm:"type:text;not null" json:"name"`
	TotalQuizzes        int64      `gorm:"not null;default:0" json:"total_quizzes"`
	AverageScore        float64    `gorm:"not null;default:0" json:"average_score"`
	TotalCorrectAnswers int64      `gorm:"not null;default:0" json:"total_correct_answers"`
	LastActivity        *time.Time `json:"last_activity,omitempty"`
}

func (Row) TableName() string { return "leaderboard" }
