package genquiz

import (
	"context"
	"time"

	"docquiz-service/internal/config"
)

// llmTimeout bounds the single outbound LLM round trip.
const llmTimeout = 60 * time.Second

// RecordSaver persists a generated quiz. Failures degrade gracefully: the
// questions are still returned to the caller.
type RecordSaver interface {
	SaveGenerated(ctx context.Context, questions []Question, name string) error
}

type Service interface {
	// GenerateQuestions drives the full pipeline for one document:
	// prompt -> LLM -> normalization. When persist is set the resulting
	// quiz is saved as the day's record, best-effort.
	GenerateQuestions(ctx context.Context, text string, persist bool) ([]Question, error)
}

type service struct {
	provider Provider
	records  RecordSaver
}

func NewService(provider Provider, records RecordSaver) Service {
	return &service{provider: provider, records: records}
}

func (s *service) GenerateQuestions(ctx context.Context, text string, persist bool) ([]Question, error) {
	log := config.WithContext(ctx)

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	log.Info("sending generation request to OpenRouter")
	raw, err := s.provider.Complete(llmCtx, systemPrompt, BuildUserPrompt(text))
	if err != nil {
		log.WithError(err).Error("LLM request failed")
		return nil, err
	}
	log.Debugf("raw model output (%d chars): %s", len(raw), raw)

	questions, err := Normalize(raw, log)
	if err != nil {
		log.WithError(err).Error("failed to normalize model output")
		return nil, err
	}
	log.Infof("generated %d questions", len(questions))

	if persist {
		if err := s.records.SaveGenerated(ctx, questions, ""); err != nil {
			log.WithError(err).Warn("failed to save quiz record")
		}
	}
	return questions, nil
}
