package question

import "github.com/google/uuid"

// QuestionResponse is what the questions endpoint returns: the stored answers
// merged into a single shuffled options list.
type QuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correct_answer"`
	Options       []string  `json:"options"`
}
