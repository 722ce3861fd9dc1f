package quizrecord

import (
	"context"
	"testing"
	"time"

	"docquiz-service/internal/genquiz"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSaveGenerated(t *testing.T) {
	ctx := context.Background()

	questions := []genquiz.Question{
		{
			Text:    "Capital of France?",
			Options: []string{"Paris", "London"},
			Answer:  "Paris",
			Type:    genquiz.TypeMultipleChoice,
			Level:   "Beginner",
			Topic:   "Geography",
		},
	}

	t.Run("default name encodes the day", func(t *testing.T) {
		store := NewMemoryStore()
		svc := NewService(store).(*service)
		svc.now = fixedClock(time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC))

		if err := svc.SaveGenerated(ctx, questions, ""); err != nil {
			t.Fatalf("SaveGenerated returned error: %v", err)
		}

		rec, err := store.Get(ctx, "quiz_03_07")
		if err != nil {
			t.Fatal(err)
		}
		if rec == nil {
			t.Fatal("expected record quiz_03_07 to exist")
		}
		if rec.TotalQuestions != 1 || rec.Questions[0].Question != "Capital of France?" {
			t.Errorf("unexpected record: %+v", rec)
		}
	})

	t.Run("same day overwrites", func(t *testing.T) {
		store := NewMemoryStore()
		svc := NewService(store).(*service)
		svc.now = fixedClock(time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC))

		if err := svc.SaveGenerated(ctx, questions, ""); err != nil {
			t.Fatal(err)
		}
		later := append(questions, genquiz.Question{
			Text:    "Is water wet?",
			Options: []string{"True", "False"},
			Answer:  "True",
			Type:    genquiz.TypeTrueFalse,
			Level:   "Beginner",
			Topic:   "Science",
		})
		if err := svc.SaveGenerated(ctx, later, ""); err != nil {
			t.Fatal(err)
		}

		records, err := store.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record after same-day overwrite, got %d", len(records))
		}
		if records[0].TotalQuestions != 2 {
			t.Errorf("expected overwritten record with 2 questions, got %d", records[0].TotalQuestions)
		}
	})

	t.Run("explicit name preserved", func(t *testing.T) {
		store := NewMemoryStore()
		svc := NewService(store)

		if err := svc.SaveGenerated(ctx, questions, "midterm"); err != nil {
			t.Fatal(err)
		}
		rec, err := store.Get(ctx, "midterm")
		if err != nil || rec == nil {
			t.Fatalf("expected record midterm, got rec=%v err=%v", rec, err)
		}
	})
}

func TestListRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store).(*service)

	svc.now = fixedClock(time.Date(2025, time.March, 6, 9, 0, 0, 0, time.UTC))
	first := []genquiz.Question{
		{Text: "Q1", Options: []string{"True", "False"}, Answer: "True", Type: genquiz.TypeTrueFalse, Level: "Beginner", Topic: "Science"},
		{Text: "Q2", Options: []string{"True", "False"}, Answer: "True", Type: genquiz.TypeTrueFalse, Level: "Beginner", Topic: "Science"},
	}
	if err := svc.SaveGenerated(ctx, first, ""); err != nil {
		t.Fatal(err)
	}

	svc.now = fixedClock(time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC))
	second := []genquiz.Question{
		{Text: "Q3", Options: []string{"True", "False"}, Answer: "False", Type: genquiz.TypeTrueFalse, Level: "Beginner", Topic: "History"},
	}
	if err := svc.SaveGenerated(ctx, second, ""); err != nil {
		t.Fatal(err)
	}

	summaries, err := svc.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords returned error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != "quiz_03_07" {
		t.Errorf("expected newest record first, got %q", summaries[0].Name)
	}
	if summaries[1].TotalQuestions != 2 {
		t.Errorf("unexpected question count: %d", summaries[1].TotalQuestions)
	}
	if len(summaries[1].Topics) != 1 || summaries[1].Topics[0] != "Science" {
		t.Errorf("expected deduplicated topics, got %v", summaries[1].Topics)
	}
}
