package result

import "github.com/google/uuid"

// SubmitResultDTO uses pointers for the numeric fields so that a zero score
// is accepted while a missing field is still rejected.
type SubmitResultDTO struct {
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	Score          *int   `json:"score"`
	TotalQuestions *int   `json:"total_questions"`
	Percentage     *int   `json:"percentage"`
	TimeTaken      *int   `json:"time_taken"`
}

type SubmitResultResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}
