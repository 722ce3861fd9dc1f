package genquiz

type GenQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewGenQuizContainer(provider Provider, records RecordSaver) *GenQuizContainer {
	service := NewService(provider, records)
	return &GenQuizContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
