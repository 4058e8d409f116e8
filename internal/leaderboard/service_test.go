package leaderboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"quizmaster/internal/leaderboard"
)

// fakeLeaderboardRepo aggregates over an in-memory result set the way the
// SQL does, so Refresh can be checked end to end.
type fakeLeaderboardRepo struct {
	name        string
	percentages []int
	scores      []int

	rows map[uuid.UUID]leaderboard.Row
}

func (f *fakeLeaderboardRepo) AggregateFor(userID uuid.UUID) (*leaderboard.Row, error) {
	row := leaderboard.Row{UserID: userID, Name: f.name}
	for i, p := range f.percentages {
		row.TotalQuizzes++
		row.AverageScore += float64(p)
		row.TotalCorrectAnswers += int64(f.scores[i])
	}
	if row.TotalQuizzes > 0 {
		row.AverageScore /= float64(row.TotalQuizzes)
		now := time.Now()
		row.LastActivity = &now
	}
	return &row, nil
}

func (f *fakeLeaderboardRepo) Upsert(row *leaderboard.Row) error {
	if f.rows == nil {
		f.rows = map[uuid.UUID]leaderboard.Row{}
	}
	f.rows[row.UserID] = *row
	return nil
}

func (f *fakeLeaderboardRepo) Top(limit int) ([]leaderboard.Row, error) {
	var rows []leaderboard.Row
	for _, r := range f.rows {
		rows = append(rows, r)
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := &fakeLeaderboardRepo{
		name:        "Alice",
		percentages: []int{80, 60, 100},
		scores:      []int{8, 6, 10},
	}
	svc := leaderboard.NewService(repo)

	if err := svc.Refresh(ctx, userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	row, ok := repo.rows[userID]
	if !ok {
		t.Fatal("Refresh did not upsert a row")
	}
	if row.TotalQuizzes != 3 {
		t.Errorf("total_quizzes: expected 3, got %d", row.TotalQuizzes)
	}
	if row.AverageScore != 80 {
		t.Errorf("average_score: expected mean percentage 80, got %v", row.AverageScore)
	}
	if row.TotalCorrectAnswers != 24 {
		t.Errorf("total_correct_answers: expected 24, got %d", row.TotalCorrectAnswers)
	}

	// A second refresh after another result replaces, never duplicates.
	repo.percentages = append(repo.percentages, 40)
	repo.scores = append(repo.scores, 4)
	if err := svc.Refresh(ctx, userID); err != nil {
		t.Fatalf("Second Refresh failed: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("Expected one row per user, got %d", len(repo.rows))
	}
	if got := repo.rows[userID].AverageScore; got != 70 {
		t.Errorf("average_score after fourth result: expected 70, got %v", got)
	}
}
