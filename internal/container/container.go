package container

import (
	"gorm.io/gorm"

	"quizmaster/internal/leaderboard"
	"quizmaster/internal/question"
	"quizmaster/internal/result"
	"quizmaster/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	QuestionContainer    *question.QuestionContainer
	ResultContainer      *result.ResultContainer
	LeaderboardContainer *leaderboard.LeaderboardContainer
}

// New wires every domain container around the injected database handle. The
// caller owns the handle's lifecycle.
func New(db *gorm.DB) *Container {
	userContainer := user.NewUserContainer(db)
	questionContainer := question.NewQuestionContainer(db)
	leaderboardContainer := leaderboard.NewLeaderboardContainer(db)
	resultContainer := result.NewResultContainer(db, leaderboardContainer.Service)

	return &Container{
		UserContainer:        userContainer,
		QuestionContainer:    questionContainer,
		ResultContainer:      resultContainer,
		LeaderboardContainer: leaderboardContainer,
	}
}
