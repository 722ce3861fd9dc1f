package leaderboard

type LeaderboardContainer struct {
	Service Service
	Handler *Handler
}

func NewLeaderboardContainer(store Store) *LeaderboardContainer {
	service := NewService(store)
	return &LeaderboardContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
