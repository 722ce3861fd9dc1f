package quizrecord

type QuizRecordContainer struct {
	Service Service
	Handler *Handler
}

func NewQuizRecordContainer(store Store) *QuizRecordContainer {
	service := NewService(store)
	return &QuizRecordContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
