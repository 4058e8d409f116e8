package result

import (
	"gorm.io/gorm"

	"quizmaster/internal/leaderboard"
)

type ResultContainer struct {
	Handler *Handler
	Service Service
}

func NewResultContainer(db *gorm.DB, lb leaderboard.Service) *ResultContainer {
	repo := NewRepository(db)
	service := NewService(repo, lb)
	handler := NewHandler(service)

	return &ResultContainer{
		Handler: handler,
		Service: service,
	}
}
