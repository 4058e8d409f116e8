package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Category         string         `gorm:"type:text;not null;index" json:"category"`
	Difficulty       string         `gorm:"type:text;not null;index" json:"difficulty"`
	Question         string         `gorm:"type:text;not null" json:"question"`
	CorrectAnswer    string         `gorm:"type:text;not null" json:"correct_answer"`
	IncorrectAnswers datatypes.JSON `gorm:"type:jsonb;not null" json:"incorrect_answers"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Question) TableName() string { return "questions" }
