package result

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is immutable once written.
type QuizResult struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Category       string    `gorm:"type:text;not null" json:"category"`
	Difficulty     string    `gorm:"type:text;not null" json:"difficulty"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	Percentage     int       `gorm:"not null" json:"percentage"`
	TimeTaken      *int      `json:"time_taken,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizResult) TableName() string { return "quiz_results" }
