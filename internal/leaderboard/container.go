package leaderboard

import "gorm.io/gorm"

type LeaderboardContainer struct {
	Handler *Handler
	Service Service
}

func NewLeaderboardContainer(db *gorm.DB) *LeaderboardContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &LeaderboardContainer{
		Handler: handler,
		Service: service,
	}
}
